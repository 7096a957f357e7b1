package access

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/meowza1/guardian-test/internal/domain/model"
)

// Rank values form the total order the authority policy compares. They only
// carry meaning within the chat they were resolved for.
const (
	RankOwner         = 1000
	RankCreator       = 100
	RankAdministrator = 50
	RankMember        = 10
	RankRestricted    = 5
	RankNone          = 0
)

type MemberSource interface {
	ChatMember(ctx context.Context, chatID, userID int64) (model.Member, string, error)
}

// Service resolves members and their ranks. It is the only rank source in the
// process, and it is keyed by chat, so ranks from different chats never meet.
type Service struct {
	ownerID int64
	members MemberSource
}

func NewService(ownerID int64, members MemberSource) *Service {
	return &Service{ownerID: ownerID, members: members}
}

func (s *Service) ResolveMember(ctx context.Context, chatID, userID int64) (model.Member, error) {
	if s.members == nil {
		return model.Member{}, errors.New("member source is not configured")
	}

	member, status, err := s.members.ChatMember(ctx, chatID, userID)
	if err != nil {
		return model.Member{}, fmt.Errorf("resolve chat member: %w", err)
	}

	member.ID = userID
	member.ChatID = chatID
	member.Rank = rankForStatus(status)
	if s.ownerID != 0 && userID == s.ownerID {
		member.Rank = RankOwner
	}
	return member, nil
}

func rankForStatus(status string) int {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "creator":
		return RankCreator
	case "administrator":
		return RankAdministrator
	case "member":
		return RankMember
	case "restricted":
		return RankRestricted
	default:
		return RankNone
	}
}
