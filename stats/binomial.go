package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when estimator inputs are out of range.
var ErrInvalidArgument = errors.New("invalid argument")

// EstimateCumulativeBinomialProbability estimates P(X <= observedSuccesses)
// for X ~ Binomial(trials, successProbability) using the normal
// approximation with continuity correction.
//
// Degenerate distributions (no trials, p = 0 or p = 1) have all their mass
// at trials*p; the result is 1 when observedSuccesses reaches that point and
// 0 otherwise.
func EstimateCumulativeBinomialProbability(trials int, successProbability float64, observedSuccesses int) (float64, error) {
	if trials < 0 {
		return 0, fmt.Errorf("%w: trials must be non-negative, got %d", ErrInvalidArgument, trials)
	}
	if observedSuccesses < 0 {
		return 0, fmt.Errorf("%w: observed successes must be non-negative, got %d", ErrInvalidArgument, observedSuccesses)
	}
	if observedSuccesses > trials {
		return 0, fmt.Errorf("%w: observed successes %d exceed trials %d", ErrInvalidArgument, observedSuccesses, trials)
	}
	// !(p >= 0 && p <= 1) also catches NaN
	if !(successProbability >= 0 && successProbability <= 1) {
		return 0, fmt.Errorf("%w: success probability must be in [0,1], got %v", ErrInvalidArgument, successProbability)
	}

	z, ok := CorrectedZScore(trials, successProbability, observedSuccesses)
	if !ok {
		if float64(observedSuccesses) >= float64(trials)*successProbability {
			return 1, nil
		}
		return 0, nil
	}

	return NormalCDF(z), nil
}

// CorrectedZScore returns how many standard deviations the
// continuity-corrected count lies from the binomial mean. ok is false when
// the variance is zero and no z-score exists. Inputs are not validated.
func CorrectedZScore(trials int, successProbability float64, observedSuccesses int) (z float64, ok bool) {
	n := float64(trials)
	mean := n * successProbability
	variance := mean * (1 - successProbability)
	if variance <= 0 {
		return 0, false
	}
	correctedK := float64(observedSuccesses) + ContinuityCorrection
	return (correctedK - mean) / math.Sqrt(variance), true
}

// NormalCDF returns Φ(z), the standard normal cumulative distribution,
// from its Taylor series around 0. Outside ±ZCutoff the series loses too
// many significant digits, so the tails are reported as exactly 0 or 1.
// Inside the cutoff the alternating terms cancel with an absolute error of
// up to ~5e-9, so deep-tail values may clamp to exactly 0 or 1 and are only
// monotone in z within that error.
func NormalCDF(z float64) float64 {
	if math.IsNaN(z) {
		return math.NaN()
	}
	if z < -ZCutoff {
		return 0
	}
	if z > ZCutoff {
		return 1
	}

	// power_k = (-1)^k z^(2k+1) / (2^k k!), term_k = power_k / (2k+1)
	power := z
	sum := 0.0
	halfZSquared := -z * z / 2
	for k := 0; k < MaxSeriesTerms; k++ {
		term := power / float64(2*k+1)
		sum += term
		if math.Abs(term) < SeriesEpsilon {
			break
		}
		power *= halfZSquared / float64(k+1)
	}

	return clampProbability(0.5 + InvSqrt2Pi*sum)
}

// MeetsApproximationRule reports whether both the expected successes and
// the expected failures exceed MinExpectedForApproximation, the usual
// condition for the normal approximation to stay within ~2%.
func MeetsApproximationRule(trials int, successProbability float64) bool {
	n := float64(trials)
	return n*successProbability > MinExpectedForApproximation &&
		n*(1-successProbability) > MinExpectedForApproximation
}

func clampProbability(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}
