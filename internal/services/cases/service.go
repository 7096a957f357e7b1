package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/meowza1/guardian-test/internal/domain/model"
)

// DefaultReason is stored when a moderator omits the reason argument.
const DefaultReason = "No reason provided"

const defaultHistoryLimit = 10

var ErrNotConfigured = errors.New("case ledger is not configured")

type Repo interface {
	Insert(context.Context, model.Case) error
	ListByTarget(context.Context, int64, int) ([]model.Case, error)
}

// Service is the case ledger: append-only, write-then-read. Nothing in this
// package or below it exposes an update or a delete.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Append stamps and persists one case record. The returned value carries the
// stamped fields.
func (s *Service) Append(ctx context.Context, c model.Case) (model.Case, error) {
	if s.repo == nil {
		return model.Case{}, ErrNotConfigured
	}
	if c.TargetID <= 0 {
		return model.Case{}, fmt.Errorf("invalid target user id")
	}
	if !c.Action.Valid() {
		return model.Case{}, fmt.Errorf("invalid case action %q", c.Action)
	}

	if strings.TrimSpace(c.Reason) == "" {
		c.Reason = DefaultReason
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, c); err != nil {
		return model.Case{}, fmt.Errorf("insert case: %w", err)
	}
	return c, nil
}

func (s *Service) History(ctx context.Context, targetID int64, limit int) ([]model.Case, error) {
	if s.repo == nil {
		return []model.Case{}, nil
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := s.repo.ListByTarget(ctx, targetID, limit)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return records, nil
}
