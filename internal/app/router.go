package app

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/meowza1/guardian-test/internal/domain/model"
	"github.com/meowza1/guardian-test/internal/services/moderation"
	"github.com/meowza1/guardian-test/internal/ui"
)

func (a *App) routeUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		a.routeMessage(ctx, update.Message)
	}

	if update.EditedMessage != nil {
		a.handleEditedMessage(ctx, update.EditedMessage)
	}
}

func (a *App) routeMessage(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.From == nil || message.Chat == nil {
		return
	}

	command, args, ok := a.parseCommand(message.Text)
	if !ok {
		a.rememberMessage(message.Chat.ID, message.MessageID, message.Text)
		return
	}

	switch command {
	case "start", "help":
		a.sendText(message.Chat.ID, ui.StartMessage(a.cfg.CommandPrefix))
	case "ban":
		a.handleBan(ctx, message, args)
	case "kick":
		a.handleKick(ctx, message, args)
	case "warn":
		a.handleWarn(ctx, message, args)
	case "userinfo":
		a.handleUserInfo(ctx, message, args)
	default:
		a.sendText(message.Chat.ID, ui.UnknownCommand(a.cfg.CommandPrefix))
	}
}

// parseCommand splits "<prefix>cmd arg arg" and strips an "@botname" suffix
// so commands addressed to the bot in groups still match.
func (a *App) parseCommand(text string) (string, []string, bool) {
	prefix := a.cfg.CommandPrefix
	if prefix == "" {
		prefix = "/"
	}

	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(trimmed, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	command := strings.ToLower(fields[0])
	if at := strings.IndexByte(command, '@'); at >= 0 {
		command = command[:at]
	}
	return command, fields[1:], true
}

func (a *App) handleBan(ctx context.Context, message *tgbotapi.Message, args []string) {
	actor, ok := a.resolveActor(ctx, message)
	if !ok {
		return
	}

	if len(args) == 0 {
		a.sendText(message.Chat.ID, ui.Usage(a.cfg.CommandPrefix, "ban"))
		return
	}
	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		a.sendText(message.Chat.ID, ui.Usage(a.cfg.CommandPrefix, "ban"))
		return
	}

	// Ban works by identifier: the target may not be a member anymore, in
	// which case there is no rank to gate on.
	var targetRank *int
	if target, err := a.accessService.ResolveMember(ctx, message.Chat.ID, targetID); err == nil {
		targetRank = &target.Rank
	}

	reply := a.moderationService.Ban(ctx, moderation.BanInput{
		ChatID:     message.Chat.ID,
		ActorID:    actor.ID,
		ActorRank:  actor.Rank,
		TargetID:   targetID,
		TargetRank: targetRank,
		Reason:     strings.Join(args[1:], " "),
	})
	a.sendText(message.Chat.ID, reply)
}

func (a *App) handleKick(ctx context.Context, message *tgbotapi.Message, args []string) {
	actor, ok := a.resolveActor(ctx, message)
	if !ok {
		return
	}

	target, reason, ok := a.resolveTargetMember(ctx, message, args, "kick")
	if !ok {
		return
	}

	reply := a.moderationService.Kick(ctx, moderation.KickInput{
		ChatID:    message.Chat.ID,
		ActorID:   actor.ID,
		ActorRank: actor.Rank,
		Target:    target,
		Reason:    reason,
	})
	a.sendText(message.Chat.ID, reply)
}

func (a *App) handleWarn(ctx context.Context, message *tgbotapi.Message, args []string) {
	actor, ok := a.resolveActor(ctx, message)
	if !ok {
		return
	}

	target, reason, ok := a.resolveTargetMember(ctx, message, args, "warn")
	if !ok {
		return
	}

	reply := a.moderationService.Warn(ctx, moderation.WarnInput{
		ChatID:    message.Chat.ID,
		ChatTitle: message.Chat.Title,
		ActorID:   actor.ID,
		ActorRank: actor.Rank,
		Target:    target,
		Reason:    reason,
	})
	a.sendText(message.Chat.ID, reply)
}

func (a *App) handleUserInfo(ctx context.Context, message *tgbotapi.Message, args []string) {
	targetID := message.From.ID
	if message.ReplyToMessage != nil && message.ReplyToMessage.From != nil {
		targetID = message.ReplyToMessage.From.ID
	}
	if len(args) > 0 {
		parsed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			a.sendText(message.Chat.ID, ui.Usage(a.cfg.CommandPrefix, "userinfo"))
			return
		}
		targetID = parsed
	}

	card, err := a.lookupService.UserInfo(ctx, message.Chat.ID, targetID)
	if err != nil {
		a.sendText(message.Chat.ID, ui.MemberNotFound(targetID))
		return
	}
	a.sendText(message.Chat.ID, ui.UserInfoCard(card))
}

func (a *App) resolveActor(ctx context.Context, message *tgbotapi.Message) (model.Member, bool) {
	actor, err := a.accessService.ResolveMember(ctx, message.Chat.ID, message.From.ID)
	if err != nil {
		a.logger.Warn("resolve actor", "error", err, "tg_id", message.From.ID)
		a.sendText(message.Chat.ID, ui.RankUnavailable())
		return model.Member{}, false
	}
	return actor, true
}

// resolveTargetMember accepts the reply-to author or a numeric id argument.
// Kick and warn require a present member; an unresolvable target is reported
// to the moderator.
func (a *App) resolveTargetMember(ctx context.Context, message *tgbotapi.Message, args []string, command string) (model.Member, string, bool) {
	var targetID int64
	reasonArgs := args

	switch {
	case message.ReplyToMessage != nil && message.ReplyToMessage.From != nil:
		targetID = message.ReplyToMessage.From.ID
	case len(args) > 0:
		parsed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			a.sendText(message.Chat.ID, ui.Usage(a.cfg.CommandPrefix, command))
			return model.Member{}, "", false
		}
		targetID = parsed
		reasonArgs = args[1:]
	default:
		a.sendText(message.Chat.ID, ui.Usage(a.cfg.CommandPrefix, command))
		return model.Member{}, "", false
	}

	target, err := a.accessService.ResolveMember(ctx, message.Chat.ID, targetID)
	if err != nil {
		a.sendText(message.Chat.ID, ui.MemberNotFound(targetID))
		return model.Member{}, "", false
	}
	return target, strings.Join(reasonArgs, " "), true
}

func (a *App) handleEditedMessage(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.From == nil || message.Chat == nil {
		return
	}

	beforeText, _ := a.cachedMessage(message.Chat.ID, message.MessageID)
	before := model.MessageEvent{
		ChatID:      message.Chat.ID,
		MessageID:   message.MessageID,
		AuthorID:    message.From.ID,
		AuthorName:  authorName(message.From),
		AuthorIsBot: message.From.IsBot,
		ChannelName: chatName(message.Chat),
		Text:        beforeText,
	}

	if err := a.mirrorService.HandleMessageEdited(ctx, before, message.Text); err != nil {
		a.logger.Error("mirror edited message", "error", err, "chat_id", message.Chat.ID)
	}

	a.rememberMessage(message.Chat.ID, message.MessageID, message.Text)
}

func (a *App) sendText(chatID int64, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if err := a.tg.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		a.logger.Error("send message", "error", err, "chat_id", chatID)
	}
}

func authorName(user *tgbotapi.User) string {
	if user.UserName != "" {
		return "@" + user.UserName
	}
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}

func chatName(chat *tgbotapi.Chat) string {
	if chat.Title != "" {
		return chat.Title
	}
	return strconv.FormatInt(chat.ID, 10)
}
