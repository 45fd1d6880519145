package output

import (
	"wow-analyzer/format"
	"wow-analyzer/model"
)

// FormatField renders a field value the way the results page shows it.
func FormatField(f model.Field) string {
	switch f.Style {
	case model.StyleDecimal:
		return format.Decimal(f.Value)
	case model.StylePercentage:
		return format.Percentage(f.Value, 2) + "%"
	case model.StyleDamage:
		return format.Number(f.Value)
	default:
		return format.Thousands(f.Value)
	}
}
