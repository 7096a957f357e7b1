package access

import (
	"context"
	"errors"
	"testing"

	"github.com/meowza1/guardian-test/internal/domain/model"
)

type stubMemberSource struct {
	member model.Member
	status string
	err    error
}

func (s *stubMemberSource) ChatMember(_ context.Context, _, _ int64) (model.Member, string, error) {
	return s.member, s.status, s.err
}

func TestResolveMemberRankByStatus(t *testing.T) {
	testCases := []struct {
		status string
		rank   int
	}{
		{status: "creator", rank: RankCreator},
		{status: "administrator", rank: RankAdministrator},
		{status: "member", rank: RankMember},
		{status: "restricted", rank: RankRestricted},
		{status: "left", rank: RankNone},
		{status: "kicked", rank: RankNone},
		{status: "", rank: RankNone},
	}

	for _, tc := range testCases {
		t.Run("status "+tc.status, func(t *testing.T) {
			svc := NewService(0, &stubMemberSource{status: tc.status})

			member, err := svc.ResolveMember(context.Background(), 100, 42)
			if err != nil {
				t.Fatalf("resolve member: %v", err)
			}
			if member.Rank != tc.rank {
				t.Fatalf("status %q: expected rank %d, got %d", tc.status, tc.rank, member.Rank)
			}
			if member.ChatID != 100 || member.ID != 42 {
				t.Fatalf("expected chat scoping on member, got %+v", member)
			}
		})
	}
}

func TestResolveMemberOwnerOverride(t *testing.T) {
	svc := NewService(42, &stubMemberSource{status: "member"})

	member, err := svc.ResolveMember(context.Background(), 100, 42)
	if err != nil {
		t.Fatalf("resolve member: %v", err)
	}
	if member.Rank != RankOwner {
		t.Fatalf("expected owner rank, got %d", member.Rank)
	}
}

func TestResolveMemberSourceError(t *testing.T) {
	svc := NewService(0, &stubMemberSource{err: errors.New("not found")})

	if _, err := svc.ResolveMember(context.Background(), 100, 42); err == nil {
		t.Fatal("expected resolve error")
	}
}

func TestResolveMemberNilSource(t *testing.T) {
	svc := NewService(0, nil)

	if _, err := svc.ResolveMember(context.Background(), 100, 42); err == nil {
		t.Fatal("expected configuration error")
	}
}
