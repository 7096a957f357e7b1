package model

import (
	"time"

	"github.com/meowza1/guardian-test/internal/domain/enums"
)

// Case is one executed moderation action. Once appended to the ledger it is
// never mutated or deleted.
type Case struct {
	ID          string
	TargetID    int64
	Action      enums.CaseAction
	Reason      string
	ModeratorID int64
	CreatedAt   time.Time
}
