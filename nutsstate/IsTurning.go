package nutsstate

// IsTurning implements the generalized NUTS U-turn criterion between two
// endpoints of a trajectory subtree. The test is symmetric:
// IsTurning(a, b) == IsTurning(b, a), regardless of which argument is
// actually earlier along the trajectory — IsTurning determines that
// itself from IdxInTrajectory, since the formula below is only valid
// once evaluated in trajectory order.
//
// The spanning momentum sum, excluding the double-counted boundary, is
//
//	delta = later.PSum - earlier.PSum + earlier.P
//
// and a U-turn is declared when delta no longer points outward from
// either endpoint's own velocity: delta.earlier.V < 0 or delta.later.V < 0.
func IsTurning(a, b *InnerState) bool {
	earlier, later := a, b
	if later.IdxInTrajectory < earlier.IdxInTrajectory {
		earlier, later = later, earlier
	}

	delta := make([]float64, earlier.Dim)
	for i := range delta {
		delta[i] = later.PSum[i] - earlier.PSum[i] + earlier.P[i]
	}

	var dotEarlier, dotLater float64
	for i := range delta {
		dotEarlier += delta[i] * earlier.V[i]
		dotLater += delta[i] * later.V[i]
	}

	return dotEarlier < 0 || dotLater < 0
}
