package progress

// completionPolicy decides whether a mission is complete given how many
// criteria passed and how many are required. Isolated so the count-threshold
// semantics can be swapped without touching the tracker.
type completionPolicy func(passed, required int) bool

// meetsRequiredCount is the default policy: complete when at least as many
// criteria pass as the mission requires. Bonus criteria raise passed but not
// required, so they can substitute for a failed required criterion.
func meetsRequiredCount(passed, required int) bool {
	return required > 0 && passed >= required
}
