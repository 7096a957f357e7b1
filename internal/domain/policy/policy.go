package policy

// CanPunish reports whether an actor may act on a target, given their ranks
// within the same chat. Equal rank is not enough.
func CanPunish(actorRank, targetRank int) bool {
	return actorRank > targetRank
}
