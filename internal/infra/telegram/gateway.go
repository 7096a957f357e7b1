package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/meowza1/guardian-test/internal/domain/model"
)

// The client doubles as the member-action gateway, the audit channel surface,
// and the member source. The underlying API takes no context; the parameter
// is kept for the service contracts.

func (c *Client) ResolveUser(_ context.Context, userID int64) (model.UserRef, error) {
	if c.dryRun {
		return model.UserRef{ID: userID}, nil
	}

	chat, err := c.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: userID},
	})
	if err != nil {
		return model.UserRef{}, fmt.Errorf("resolve user %d: %w", userID, err)
	}

	return model.UserRef{
		ID:          userID,
		Username:    chat.UserName,
		DisplayName: displayName(chat.FirstName, chat.LastName),
	}, nil
}

func (c *Client) BanUser(_ context.Context, chatID, userID int64, _ string) error {
	if c.dryRun {
		return nil
	}

	_, err := c.api.Request(tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: chatID, UserID: userID},
	})
	if err != nil {
		return fmt.Errorf("ban user %d: %w", userID, err)
	}
	return nil
}

// KickMember bans and immediately unbans: the platform's remove-without-ban
// primitive.
func (c *Client) KickMember(_ context.Context, chatID, userID int64, _ string) error {
	if c.dryRun {
		return nil
	}

	_, err := c.api.Request(tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: chatID, UserID: userID},
	})
	if err != nil {
		return fmt.Errorf("kick member %d: %w", userID, err)
	}

	_, err = c.api.Request(tgbotapi.UnbanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: chatID, UserID: userID},
		OnlyIfBanned:     true,
	})
	if err != nil {
		return fmt.Errorf("unban kicked member %d: %w", userID, err)
	}
	return nil
}

func (c *Client) SendDirectMessage(_ context.Context, userID int64, text string) error {
	if c.dryRun {
		return nil
	}

	if _, err := c.api.Send(tgbotapi.NewMessage(userID, text)); err != nil {
		return fmt.Errorf("send direct message to %d: %w", userID, err)
	}
	return nil
}

func (c *Client) ChatMember(_ context.Context, chatID, userID int64) (model.Member, string, error) {
	if c.dryRun {
		return model.Member{ID: userID, ChatID: chatID}, "member", nil
	}

	member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: userID},
	})
	if err != nil {
		return model.Member{}, "", fmt.Errorf("get chat member %d: %w", userID, err)
	}

	m := model.Member{ID: userID, ChatID: chatID}
	if member.User != nil {
		m.Username = member.User.UserName
		m.DisplayName = displayName(member.User.FirstName, member.User.LastName)
	}
	return m, member.Status, nil
}

// FindChannelByName resolves the audit channel by public username. Lookup
// failure means the channel is absent; mirroring is opt-in by its existence.
func (c *Client) FindChannelByName(_ context.Context, _ int64, name string) (model.ChannelRef, bool, error) {
	if c.dryRun {
		return model.ChannelRef{}, false, nil
	}

	username := "@" + strings.TrimPrefix(strings.TrimSpace(name), "@")
	chat, err := c.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{SuperGroupUsername: username},
	})
	if err != nil {
		return model.ChannelRef{}, false, nil
	}

	return model.ChannelRef{ID: chat.ID, Name: name}, true, nil
}

func (c *Client) Post(_ context.Context, channel model.ChannelRef, text string) error {
	if c.dryRun {
		return nil
	}

	if _, err := c.api.Send(tgbotapi.NewMessage(channel.ID, text)); err != nil {
		return fmt.Errorf("post to channel %d: %w", channel.ID, err)
	}
	return nil
}

func displayName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
