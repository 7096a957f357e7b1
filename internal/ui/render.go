package ui

import (
	"fmt"
	"strings"

	"github.com/meowza1/guardian-test/internal/domain/model"
)

const maxMirroredContentLen = 1000

func DeletedMessageRecord(evt model.MessageEvent) string {
	lines := []string{
		"Message Deleted",
		fmt.Sprintf("User: %s (%d)", evt.AuthorName, evt.AuthorID),
		fmt.Sprintf("Channel: %s", evt.ChannelName),
		fmt.Sprintf("Content: %s", truncateContent(evt.Text)),
	}
	return strings.Join(lines, "\n")
}

func EditedMessageRecord(before model.MessageEvent, afterText string) string {
	lines := []string{
		"Message Edited",
		fmt.Sprintf("User: %s (%d)", before.AuthorName, before.AuthorID),
		fmt.Sprintf("Channel: %s", before.ChannelName),
		fmt.Sprintf("Before: %s", truncateContent(before.Text)),
		fmt.Sprintf("After: %s", truncateContent(afterText)),
	}
	return strings.Join(lines, "\n")
}

func UserInfoCard(card model.UserCard) string {
	lines := []string{
		"User Info",
		fmt.Sprintf("Username: %s", MemberTag(card.Member)),
		fmt.Sprintf("UserID: %d", card.Member.ID),
		fmt.Sprintf("Rank: %d", card.Member.Rank),
		fmt.Sprintf("Cases: %d", len(card.Cases)),
	}
	return strings.Join(lines, "\n")
}

// truncateContent caps mirrored content at 1000 characters and substitutes a
// placeholder for empty content.
func truncateContent(text string) string {
	if strings.TrimSpace(text) == "" {
		return "None"
	}
	runes := []rune(text)
	if len(runes) > maxMirroredContentLen {
		return string(runes[:maxMirroredContentLen])
	}
	return text
}
