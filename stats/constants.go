// Package stats implements the numeric side of the analyzers.
// This file defines the constants used by the estimator and the
// per-analyzer formulas, including:
// - Normal CDF series bounds
// - Proc chances and approximation limits
// - Suggestion thresholds
// - Stat scaling factors
package stats

// Standard normal CDF series bounds.
const (
	// InvSqrt2Pi is 1/sqrt(2π), the leading coefficient of the series.
	InvSqrt2Pi = 0.3989422804014327

	// ZCutoff bounds the series; beyond ±ZCutoff the result is 0 or 1.
	ZCutoff = 6.5

	// SeriesEpsilon stops accumulation once a term drops below it.
	SeriesEpsilon = 1e-23

	// MaxSeriesTerms caps the loop. At |z| = ZCutoff the series
	// converges in well under 200 terms.
	MaxSeriesTerms = 1000

	// ContinuityCorrection is added to the observed count when
	// approximating P(X <= k) with a continuous distribution.
	ContinuityCorrection = 0.5
)

// Normal approximation quality. Below this many expected successes (or
// failures) the approximation carries more than ~2% error.
const (
	MinExpectedForApproximation = 10.0
)

// Proc and timing constants.
const (
	VolleyProcChance = 0.25 // Auto shot chance to trigger Volley
	VolleyBufferMs   = 100  // Volley hits within this window belong to one proc
)

// Immolation Aura fury waste thresholds (wasted / gained).
const (
	ImmolationWasteMinor   = 0.03
	ImmolationWasteAverage = 0.07
	ImmolationWasteMajor   = 0.10
)

// Focusing Iris haste scaling. Rank 1 uses the first pair, rank 2+ the second.
const (
	FocusingIrisBaseItemLevel     = 477
	FocusingIrisBaseHaste         = 25
	FocusingIrisRankTwoItemLevel  = 505
	FocusingIrisRankTwoBaseHaste  = 40
	FocusingIrisRankTwoStacks     = 3
	FocusingIrisRankOneStacks     = 1
	FocusingIrisRankForExtraStack = 2
)

// Secondary stat scaling: stats grow by StatScalePerStep every
// ItemLevelsPerStep item levels.
const (
	StatScalePerStep  = 1.15
	ItemLevelsPerStep = 15.0
)

// MsPerMinute converts fight durations for per-minute rates.
const MsPerMinute = 60000.0
