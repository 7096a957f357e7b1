package mirror

import (
	"context"
	"fmt"
	"strings"

	"github.com/meowza1/guardian-test/internal/domain/model"
	"github.com/meowza1/guardian-test/internal/ui"
)

// DefaultChannelName is the audit channel convention: mirroring is opt-in by
// the channel's existence.
const DefaultChannelName = "message-logs"

type Channels interface {
	FindChannelByName(ctx context.Context, chatID int64, name string) (model.ChannelRef, bool, error)
	Post(ctx context.Context, channel model.ChannelRef, text string) error
}

// Service republishes message mutations into the audit channel. Stateless per
// event: bot-authored events and a missing audit channel are the only two
// suppression conditions, send failures propagate.
type Service struct {
	channels    Channels
	channelName string
}

func NewService(channels Channels, channelName string) *Service {
	if strings.TrimSpace(channelName) == "" {
		channelName = DefaultChannelName
	}
	return &Service{channels: channels, channelName: channelName}
}

func (s *Service) HandleMessageDeleted(ctx context.Context, evt model.MessageEvent) error {
	if evt.AuthorIsBot {
		return nil
	}

	channel, ok := s.lookupChannel(ctx, evt.ChatID)
	if !ok {
		return nil
	}

	if err := s.channels.Post(ctx, channel, ui.DeletedMessageRecord(evt)); err != nil {
		return fmt.Errorf("mirror deleted message: %w", err)
	}
	return nil
}

func (s *Service) HandleMessageEdited(ctx context.Context, before model.MessageEvent, afterText string) error {
	if before.AuthorIsBot {
		return nil
	}

	channel, ok := s.lookupChannel(ctx, before.ChatID)
	if !ok {
		return nil
	}

	if err := s.channels.Post(ctx, channel, ui.EditedMessageRecord(before, afterText)); err != nil {
		return fmt.Errorf("mirror edited message: %w", err)
	}
	return nil
}

func (s *Service) lookupChannel(ctx context.Context, chatID int64) (model.ChannelRef, bool) {
	if s.channels == nil {
		return model.ChannelRef{}, false
	}
	channel, ok, err := s.channels.FindChannelByName(ctx, chatID, s.channelName)
	if err != nil || !ok {
		return model.ChannelRef{}, false
	}
	return channel, true
}
