package battle

import "math"

// decideWinner picks the winner once the loop has stopped.
// A lone survivor wins; otherwise higher HP fraction, then higher Power,
// then fighter 0.
func decideWinner(f [2]*Fighter) (int, EndReason) {
	alive0, alive1 := f[0].Alive(), f[1].Alive()
	switch {
	case alive0 && !alive1:
		return 0, EndReasonKO
	case alive1 && !alive0:
		return 1, EndReasonKO
	}

	reason := EndReasonMaxTurns
	if !alive0 && !alive1 {
		reason = EndReasonKO
	}

	// compare current/max by cross multiplication to keep it exact
	lhs := int64(hpOrZero(f[0])) * int64(f[1].MaxHP)
	rhs := int64(hpOrZero(f[1])) * int64(f[0].MaxHP)
	switch {
	case f[0].MaxHP <= 0 && f[1].MaxHP > 0:
		lhs, rhs = 0, int64(hpOrZero(f[1]))
	case f[1].MaxHP <= 0 && f[0].MaxHP > 0:
		lhs, rhs = int64(hpOrZero(f[0])), 0
	}
	switch {
	case lhs > rhs:
		return 0, reason
	case rhs > lhs:
		return 1, reason
	}

	p0, p1 := f[0].Snapshot.Stats.Power, f[1].Snapshot.Stats.Power
	switch {
	case p0 > p1:
		return 0, reason
	case p1 > p0:
		return 1, reason
	}

	return 0, reason
}

func hpOrZero(f *Fighter) int32 {
	if f.MaxHP <= 0 {
		return 0
	}
	return f.CurrentHP
}

// hpPercent is the rounded remaining HP percentage
func hpPercent(f *Fighter) int {
	if f.MaxHP <= 0 {
		return 0
	}
	return int(math.Round(float64(f.CurrentHP) / float64(f.MaxHP) * 100))
}
