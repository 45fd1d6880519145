package model

import "wow-analyzer/stats"

// Category groups statistics on the results page.
type Category string

const (
	CategoryTalents Category = "talents"
	CategoryItems   Category = "items"
)

// FieldStyle tells renderers how to print a Field value.
type FieldStyle int

const (
	StyleNumber     FieldStyle = iota // grouped integer
	StyleDecimal                      // two decimals
	StylePercentage                   // 0..1 shown as percent
	StyleDamage                       // grouped integer, damage
)

// Field is one labelled number in a statistic box.
type Field struct {
	Key   string // stable identifier for exports, e.g. "fury_per_minute"
	Label string
	Value float64
	Style FieldStyle
}

// Suggestion is an improvement hint raised when a threshold is crossed.
type Suggestion struct {
	Text        string
	Actual      string
	Recommended string
	Importance  stats.Importance
}

// Statistic is what an analyzer reports once the fight is over.
type Statistic struct {
	Analyzer    string
	Title       string
	Category    Category
	Position    int
	Fields      []Field
	Tooltip     []string
	Suggestions []Suggestion
}

// Field returns the field with the given key.
func (s Statistic) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
