package lookup

import (
	"context"
	"errors"

	"github.com/meowza1/guardian-test/internal/domain/model"
)

var ErrUserNotFound = errors.New("user not found")

const historyLimit = 25

type Members interface {
	ResolveMember(ctx context.Context, chatID, userID int64) (model.Member, error)
}

type CaseHistory interface {
	History(ctx context.Context, targetID int64, limit int) ([]model.Case, error)
}

// Service backs the userinfo command.
type Service struct {
	members Members
	history CaseHistory
}

func NewService(members Members, history CaseHistory) *Service {
	return &Service{members: members, history: history}
}

func (s *Service) UserInfo(ctx context.Context, chatID, userID int64) (model.UserCard, error) {
	if s.members == nil {
		return model.UserCard{}, ErrUserNotFound
	}

	member, err := s.members.ResolveMember(ctx, chatID, userID)
	if err != nil {
		return model.UserCard{}, ErrUserNotFound
	}

	card := model.UserCard{Member: member}
	if s.history != nil {
		records, err := s.history.History(ctx, userID, historyLimit)
		if err != nil {
			return model.UserCard{}, err
		}
		card.Cases = records
	}
	return card, nil
}
