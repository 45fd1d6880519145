package stats

// Importance grades how far a metric is from its recommended value.
type Importance int

const (
	ImportanceNone Importance = iota
	ImportanceMinor
	ImportanceAverage
	ImportanceMajor
)

func (i Importance) String() string {
	switch i {
	case ImportanceMinor:
		return "minor"
	case ImportanceAverage:
		return "average"
	case ImportanceMajor:
		return "major"
	default:
		return "none"
	}
}

// Style tells renderers how Actual and Recommended should be printed.
type Style int

const (
	StyleNumber Style = iota
	StylePercentage
)

// Comparison selects which side of the thresholds is bad.
type Comparison int

const (
	// IsGreaterThan flags values above the thresholds (e.g. wasted resources).
	IsGreaterThan Comparison = iota
	// IsLessThan flags values below the thresholds (e.g. uptime).
	IsLessThan
)

// Levels are the three cut points, ordered from mildest to worst.
type Levels struct {
	Minor   float64
	Average float64
	Major   float64
}

// Thresholds pairs an observed value with the levels it is graded against.
type Thresholds struct {
	Actual     float64
	Comparison Comparison
	Levels     Levels
	Style      Style
}

// Grade returns the worst level Actual crosses.
func (t Thresholds) Grade() Importance {
	switch {
	case t.crosses(t.Levels.Major):
		return ImportanceMajor
	case t.crosses(t.Levels.Average):
		return ImportanceAverage
	case t.crosses(t.Levels.Minor):
		return ImportanceMinor
	default:
		return ImportanceNone
	}
}

// Recommended is the value players should aim for.
func (t Thresholds) Recommended() float64 {
	return t.Levels.Minor
}

func (t Thresholds) crosses(level float64) bool {
	if t.Comparison == IsLessThan {
		return t.Actual < level
	}
	return t.Actual > level
}
