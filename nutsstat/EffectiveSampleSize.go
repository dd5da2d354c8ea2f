package nutsstat

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// EffectiveSampleSize estimates the effective sample size of a single
// coordinate's draw sequence using the standard autocorrelation-sum
// estimator:
//
//	ESS = n / (1 + 2 * sum_{k=1}^{K} rho_k)
//
// where rho_k is the lag-k autocorrelation, summed in consecutive
// pairs (rho_1 + rho_2, rho_3 + rho_4, ...) and cut off at the first
// pair whose sum is negative (Geyer's initial positive sequence rule),
// the usual stopping rule for this estimator. It returns 0 for fewer
// than two draws.
func EffectiveSampleSize(draws []float64) float64 {
	n := len(draws)
	if n < 2 {
		return 0
	}
	if stat.Variance(draws, nil) == 0 {
		// A constant sequence has no decaying autocorrelation to sum;
		// treat every draw as independent.
		return float64(n)
	}

	rho := stat.AutoCorrelation(nil, draws)

	sum := 0.0
	for k := 1; k+1 < len(rho); k += 2 {
		pairSum := rho[k] + rho[k+1]
		if pairSum < 0 {
			break
		}
		sum += pairSum
	}

	denom := 1 + 2*sum
	if denom <= 0 || math.IsNaN(denom) {
		return float64(n)
	}
	return float64(n) / denom
}
