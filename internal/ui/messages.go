package ui

import (
	"fmt"
	"strconv"

	"github.com/meowza1/guardian-test/internal/domain/model"
)

func StartMessage(prefix string) string {
	return fmt.Sprintf(
		"Guardian moderation bot.\nCommands: %[1]sban <user_id> [reason], %[1]skick <user_id|reply> [reason], %[1]swarn <user_id|reply> [reason], %[1]suserinfo [user_id]",
		prefix,
	)
}

func UnknownCommand(prefix string) string {
	return fmt.Sprintf("Unknown command. Use %sstart", prefix)
}

func Usage(prefix, command string) string {
	return fmt.Sprintf("Usage: %s%s <user_id> [reason]", prefix, command)
}

func EqualOrHigherRole() string {
	return "You cannot punish someone with equal/higher role."
}

func Banned(user model.UserRef) string {
	return fmt.Sprintf("Banned %s | ID: %d", UserTag(user), user.ID)
}

func BanFailed(targetID int64, err error) string {
	return fmt.Sprintf("Failed to ban ID %d: %v", targetID, err)
}

func Kicked(name string) string {
	return fmt.Sprintf("Kicked %s", name)
}

func KickFailed(name string, err error) string {
	return fmt.Sprintf("Failed to kick %s: %v", name, err)
}

func Warned(name string) string {
	return fmt.Sprintf("%s has been warned.", name)
}

func WarnNotice(community, reason string) string {
	return fmt.Sprintf("You were warned in %s: %s", community, reason)
}

func MemberNotFound(targetID int64) string {
	return fmt.Sprintf("User %d was not found in this chat", targetID)
}

func RankUnavailable() string {
	return "Could not resolve your role in this chat"
}

func UserTag(user model.UserRef) string {
	return tag(user.Username, user.DisplayName, user.ID)
}

func MemberTag(member model.Member) string {
	return tag(member.Username, member.DisplayName, member.ID)
}

func tag(username, displayName string, id int64) string {
	if username != "" {
		return "@" + username
	}
	if displayName != "" {
		return displayName
	}
	return strconv.FormatInt(id, 10)
}
