package moderation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/meowza1/guardian-test/internal/domain/enums"
	"github.com/meowza1/guardian-test/internal/domain/model"
	"github.com/meowza1/guardian-test/internal/domain/policy"
	"github.com/meowza1/guardian-test/internal/services/cases"
	"github.com/meowza1/guardian-test/internal/ui"
)

var errGatewayNotConfigured = errors.New("member gateway is not configured")

// Gateway is the platform surface the pipeline acts through.
type Gateway interface {
	ResolveUser(ctx context.Context, userID int64) (model.UserRef, error)
	BanUser(ctx context.Context, chatID, userID int64, reason string) error
	KickMember(ctx context.Context, chatID, userID int64, reason string) error
	SendDirectMessage(ctx context.Context, userID int64, text string) error
}

type Ledger interface {
	Append(context.Context, model.Case) (model.Case, error)
}

// Service executes moderation actions: validate, check authority, act through
// the gateway, record the case, reply. Every operation returns a plain reply
// string for the router; failures are folded into the reply, never raised.
type Service struct {
	gateway Gateway
	ledger  Ledger
	logger  *slog.Logger
}

func NewService(gateway Gateway, ledger Ledger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gateway: gateway, ledger: ledger, logger: logger}
}

type BanInput struct {
	ChatID    int64
	ActorID   int64
	ActorRank int
	TargetID  int64
	// TargetRank is nil when the target is not a current member. Bans work
	// by identifier and proceed without the rank gate in that case.
	TargetRank *int
	Reason     string
}

func (s *Service) Ban(ctx context.Context, in BanInput) string {
	reason := normalizeReason(in.Reason)

	if in.TargetRank != nil && !policy.CanPunish(in.ActorRank, *in.TargetRank) {
		return ui.EqualOrHigherRole()
	}

	if s.gateway == nil {
		return ui.BanFailed(in.TargetID, errGatewayNotConfigured)
	}

	user, err := s.gateway.ResolveUser(ctx, in.TargetID)
	if err != nil {
		return ui.BanFailed(in.TargetID, err)
	}

	if err := s.gateway.BanUser(ctx, in.ChatID, in.TargetID, reason); err != nil {
		return ui.BanFailed(in.TargetID, err)
	}

	s.record(ctx, enums.CaseActionBan, in.TargetID, in.ActorID, reason)
	return ui.Banned(user)
}

type KickInput struct {
	ChatID    int64
	ActorID   int64
	ActorRank int
	Target    model.Member
	Reason    string
}

func (s *Service) Kick(ctx context.Context, in KickInput) string {
	reason := normalizeReason(in.Reason)

	if !policy.CanPunish(in.ActorRank, in.Target.Rank) {
		return ui.EqualOrHigherRole()
	}

	if s.gateway == nil {
		return ui.KickFailed(ui.MemberTag(in.Target), errGatewayNotConfigured)
	}

	if err := s.gateway.KickMember(ctx, in.ChatID, in.Target.ID, reason); err != nil {
		return ui.KickFailed(ui.MemberTag(in.Target), err)
	}

	s.record(ctx, enums.CaseActionKick, in.Target.ID, in.ActorID, reason)
	return ui.Kicked(ui.MemberTag(in.Target))
}

type WarnInput struct {
	ChatID    int64
	ChatTitle string
	ActorID   int64
	ActorRank int
	Target    model.Member
	Reason    string
}

func (s *Service) Warn(ctx context.Context, in WarnInput) string {
	reason := normalizeReason(in.Reason)

	if !policy.CanPunish(in.ActorRank, in.Target.Rank) {
		return ui.EqualOrHigherRole()
	}

	// The ledger write happens before the notification attempt and is never
	// rolled back.
	s.record(ctx, enums.CaseActionWarn, in.Target.ID, in.ActorID, reason)

	if s.gateway != nil {
		// Best-effort delivery: the target may have closed direct messages.
		_ = s.gateway.SendDirectMessage(ctx, in.Target.ID, ui.WarnNotice(in.ChatTitle, reason))
	}

	return ui.Warned(ui.MemberTag(in.Target))
}

func (s *Service) record(ctx context.Context, action enums.CaseAction, targetID, moderatorID int64, reason string) {
	if s.ledger == nil {
		return
	}
	_, err := s.ledger.Append(ctx, model.Case{
		TargetID:    targetID,
		Action:      action,
		Reason:      reason,
		ModeratorID: moderatorID,
	})
	if err != nil {
		s.logger.Error("append case", "action", string(action), "target_id", targetID, "error", err)
	}
}

func normalizeReason(raw string) string {
	reason := strings.TrimSpace(raw)
	if reason == "" {
		return cases.DefaultReason
	}
	return reason
}
