package checkin

// Tier classifies a day's completion ratio.
type Tier int

const (
	TierNoTasks Tier = iota
	TierComplete
	TierNearComplete
	TierPartial
	TierEncouragement
)

func (t Tier) String() string {
	switch t {
	case TierNoTasks:
		return "no-tasks"
	case TierComplete:
		return "complete"
	case TierNearComplete:
		return "near-complete"
	case TierPartial:
		return "partial-effort"
	case TierEncouragement:
		return "encouragement"
	}
	return "unknown"
}

// TierFor maps a done/total count onto a feedback tier. The conditions
// are checked in order; the 0.7 boundary is inclusive and computed in
// integers so 7 of 10 counts as near-complete.
func TierFor(done, total int) Tier {
	switch {
	case total == 0:
		return TierNoTasks
	case done == total:
		return TierComplete
	case done*10 >= total*7:
		return TierNearComplete
	case done > 0:
		return TierPartial
	}
	return TierEncouragement
}
