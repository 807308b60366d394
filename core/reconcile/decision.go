package reconcile

// Decide applies the per-record policy.
// corrupt and equal are only meaningful for existing entries under fetchAll.
func Decide(existing, fetchAll, corrupt, equal bool) Action {
	switch {
	case !existing:
		return ActionCreate
	case !fetchAll:
		return ActionSkip
	case corrupt:
		return ActionUpdate
	case equal:
		return ActionNoop
	default:
		return ActionUpdate
	}
}
