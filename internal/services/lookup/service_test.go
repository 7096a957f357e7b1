package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/meowza1/guardian-test/internal/domain/enums"
	"github.com/meowza1/guardian-test/internal/domain/model"
)

type stubMembers struct {
	member model.Member
	err    error
}

func (s *stubMembers) ResolveMember(_ context.Context, _, _ int64) (model.Member, error) {
	return s.member, s.err
}

type stubHistory struct {
	records []model.Case
	err     error
}

func (s *stubHistory) History(_ context.Context, _ int64, _ int) ([]model.Case, error) {
	return s.records, s.err
}

func TestUserInfo(t *testing.T) {
	members := &stubMembers{member: model.Member{ID: 42, Username: "bob", Rank: 10}}
	history := &stubHistory{records: []model.Case{{TargetID: 42, Action: enums.CaseActionWarn}}}
	svc := NewService(members, history)

	card, err := svc.UserInfo(context.Background(), 100, 42)
	if err != nil {
		t.Fatalf("user info: %v", err)
	}
	if card.Member.Username != "bob" {
		t.Fatalf("unexpected member %+v", card.Member)
	}
	if len(card.Cases) != 1 {
		t.Fatalf("expected one case, got %d", len(card.Cases))
	}
}

func TestUserInfoNotFound(t *testing.T) {
	svc := NewService(&stubMembers{err: errors.New("gone")}, &stubHistory{})

	if _, err := svc.UserInfo(context.Background(), 100, 42); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserInfoWithoutHistory(t *testing.T) {
	svc := NewService(&stubMembers{member: model.Member{ID: 42}}, nil)

	card, err := svc.UserInfo(context.Background(), 100, 42)
	if err != nil {
		t.Fatalf("user info: %v", err)
	}
	if len(card.Cases) != 0 {
		t.Fatalf("expected no cases, got %d", len(card.Cases))
	}
}
