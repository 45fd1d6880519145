package stats

import "math"

// ScaleStat scales a stat budget known at baseItemLevel to itemLevel.
// Stats grow by StatScalePerStep every ItemLevelsPerStep levels.
func ScaleStat(baseItemLevel, baseStat, itemLevel int) float64 {
	steps := float64(itemLevel-baseItemLevel) / ItemLevelsPerStep
	return math.Round(float64(baseStat) * math.Pow(StatScalePerStep, steps))
}
