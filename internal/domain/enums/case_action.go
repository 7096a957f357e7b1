package enums

// CaseAction values are stored lowercase, matching the historical ledger
// documents in guardian.cases.
type CaseAction string

const (
	CaseActionBan  CaseAction = "ban"
	CaseActionKick CaseAction = "kick"
	CaseActionWarn CaseAction = "warn"
)

func (a CaseAction) Valid() bool {
	switch a {
	case CaseActionBan, CaseActionKick, CaseActionWarn:
		return true
	default:
		return false
	}
}
