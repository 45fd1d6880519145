package parser

import (
	"fmt"

	"wow-analyzer/format"
	"wow-analyzer/model"
	"wow-analyzer/stats"
)

// ImmolationAura tracks the Havoc Immolation Aura talent: fury generated
// by the aura ticks, fury lost to overcapping, and the aura's damage.
type ImmolationAura struct {
	parser *Parser
	active bool

	furyGain  int
	furyWaste int
	damage    int
}

// NewImmolationAura creates the analyzer. It is inactive without the talent.
func NewImmolationAura(p *Parser) *ImmolationAura {
	ia := &ImmolationAura{parser: p}
	ia.active = p.Selected().HasTalent(SpellImmolationAuraTalent)
	if !ia.active {
		return ia
	}
	p.On(ia.onEnergize)
	p.On(ia.onDamage)
	return ia
}

// Name identifies the analyzer in logs and exports.
func (ia *ImmolationAura) Name() string { return "immolation_aura" }

// Active reports whether the combatant has the Immolation Aura talent.
func (ia *ImmolationAura) Active() bool { return ia.active }

func (ia *ImmolationAura) onEnergize(e model.EnergizeEvent) {
	if e.AbilityID != SpellImmolationAuraBuffDamage {
		return
	}
	ia.furyGain += e.ResourceChange
	ia.furyWaste += e.Waste
}

func (ia *ImmolationAura) onDamage(e model.DamageEvent) {
	if e.AbilityID != SpellImmolationAuraFirstStrike && e.AbilityID != SpellImmolationAuraBuffDamage {
		return
	}
	ia.damage += e.Amount
}

// FuryGained is the total fury generated, wasted fury included.
func (ia *ImmolationAura) FuryGained() int { return ia.furyGain }

// FuryWasted is the fury lost to the resource cap.
func (ia *ImmolationAura) FuryWasted() int { return ia.furyWaste }

// Damage returns the aura's total damage.
func (ia *ImmolationAura) Damage() int { return ia.damage }

// FuryPerMinute is the effective fury generated per minute of fight.
func (ia *ImmolationAura) FuryPerMinute() float64 {
	minutes := float64(ia.parser.FightDuration()) / stats.MsPerMinute
	if minutes <= 0 {
		return 0
	}
	return float64(ia.furyGain-ia.furyWaste) / minutes
}

// SuggestionThresholds grades the share of fury wasted.
func (ia *ImmolationAura) SuggestionThresholds() stats.Thresholds {
	actual := 0.0
	if ia.furyGain > 0 {
		actual = float64(ia.furyWaste) / float64(ia.furyGain)
	}
	return stats.Thresholds{
		Actual:     actual,
		Comparison: stats.IsGreaterThan,
		Levels: stats.Levels{
			Minor:   stats.ImmolationWasteMinor,
			Average: stats.ImmolationWasteAverage,
			Major:   stats.ImmolationWasteMajor,
		},
		Style: stats.StylePercentage,
	}
}

// Suggestions returns a fury waste suggestion when the waste is too high.
func (ia *ImmolationAura) Suggestions() []model.Suggestion {
	th := ia.SuggestionThresholds()
	importance := th.Grade()
	if importance == stats.ImportanceNone {
		return nil
	}
	return []model.Suggestion{{
		Text:        "Avoid casting Immolation Aura when close to max Fury.",
		Actual:      fmt.Sprintf("%s%% Fury wasted", format.Percentage(th.Actual, 2)),
		Recommended: fmt.Sprintf("%s%% is recommended.", format.Percentage(th.Recommended(), 2)),
		Importance:  importance,
	}}
}

// Statistic summarizes fury generation and the aura's damage.
func (ia *ImmolationAura) Statistic() model.Statistic {
	return model.Statistic{
		Analyzer: ia.Name(),
		Title:    "Immolation Aura",
		Category: model.CategoryTalents,
		Position: optionalPosition(6),
		Fields: []model.Field{
			{Key: "fury_per_minute", Label: "Fury per min", Value: ia.FuryPerMinute(), Style: model.StyleDecimal},
			{Key: "damage", Label: "damage", Value: float64(ia.damage), Style: model.StyleDamage},
		},
		Tooltip: []string{
			fmt.Sprintf("%s Total damage", format.Thousands(float64(ia.damage))),
			fmt.Sprintf("%d Effective Fury gained", ia.furyGain-ia.furyWaste),
			fmt.Sprintf("%d Total Fury gained", ia.furyGain),
			fmt.Sprintf("%d Fury wasted", ia.furyWaste),
		},
		Suggestions: ia.Suggestions(),
	}
}
