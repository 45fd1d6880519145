package parser

import (
	"fmt"

	"wow-analyzer/format"
	"wow-analyzer/model"
	"wow-analyzer/stats"
)

// FocusingIris tracks Essence of the Focusing Iris.
//
// Minor: damaging abilities grant stacking haste (Focused Energy). Rank 2
// raises the haste per stack and makes the first application grant 3
// stacks. Major: a channelled beam dealing fire damage in front of the
// player.
type FocusingIris struct {
	parser *Parser
	active bool

	rank          int
	hasMajor      bool
	hastePerStack float64
	stacks        *StackTracker
	majorDamage   int
}

// NewFocusingIris creates the analyzer. It is inactive without the essence.
func NewFocusingIris(p *Parser) *FocusingIris {
	fi := &FocusingIris{parser: p}
	combatant := p.Selected()
	fi.active = combatant.HasEssence(TraitFocusingIris)
	if !fi.active {
		return fi
	}
	fi.rank = combatant.EssenceRank(TraitFocusingIris)
	fi.hasMajor = combatant.HasMajor(TraitFocusingIris)
	if fi.rank < stats.FocusingIrisRankForExtraStack {
		fi.hastePerStack = stats.ScaleStat(stats.FocusingIrisBaseItemLevel, stats.FocusingIrisBaseHaste, combatant.NeckItemLevel)
	} else {
		fi.hastePerStack = stats.ScaleStat(stats.FocusingIrisRankTwoItemLevel, stats.FocusingIrisRankTwoBaseHaste, combatant.NeckItemLevel)
	}
	fi.stacks = NewStackTracker(p.Fight().StartTime)

	p.On(fi.onApplyBuff)
	p.On(fi.onRemoveBuff)
	p.On(fi.onApplyBuffStack)
	p.On(fi.onFightEnd)
	if fi.hasMajor {
		p.On(fi.onDamage)
	}
	return fi
}

// Name identifies the analyzer in logs and exports.
func (fi *FocusingIris) Name() string { return "focusing_iris" }

// Active reports whether the essence is slotted.
func (fi *FocusingIris) Active() bool { return fi.active }

func (fi *FocusingIris) onApplyBuff(e model.ApplyBuffEvent) {
	if e.AbilityID != SpellFocusedEnergyBuff {
		return
	}
	stacks := stats.FocusingIrisRankOneStacks
	if fi.rank >= stats.FocusingIrisRankForExtraStack {
		stacks = stats.FocusingIrisRankTwoStacks
	}
	fi.stacks.Apply(e.Timestamp, stacks)
}

func (fi *FocusingIris) onRemoveBuff(e model.RemoveBuffEvent) {
	if e.AbilityID != SpellFocusedEnergyBuff {
		return
	}
	fi.stacks.Remove(e.Timestamp)
}

func (fi *FocusingIris) onApplyBuffStack(e model.ApplyBuffStackEvent) {
	if e.AbilityID != SpellFocusedEnergyBuff {
		return
	}
	fi.stacks.Stack(e.Timestamp, e.Stack)
}

func (fi *FocusingIris) onFightEnd(e model.FightEndEvent) {
	fi.stacks.End(e.Timestamp)
}

func (fi *FocusingIris) onDamage(e model.DamageEvent) {
	if e.AbilityID != SpellFocusedAzeriteBeamDamage {
		return
	}
	fi.majorDamage += e.Total()
}

// HastePerStack is the haste rating one stack grants at the neck's item level.
func (fi *FocusingIris) HastePerStack() float64 { return fi.hastePerStack }

// AverageHaste is the haste rating gained, averaged over the whole fight.
func (fi *FocusingIris) AverageHaste() float64 {
	duration := fi.parser.FightDuration()
	if duration <= 0 || fi.stacks == nil {
		return 0
	}
	return float64(fi.stacks.StackTime) * fi.hastePerStack / float64(duration)
}

// Uptime is the share of the fight with at least one stack.
func (fi *FocusingIris) Uptime() float64 {
	duration := fi.parser.FightDuration()
	if duration <= 0 || fi.stacks == nil {
		return 0
	}
	return float64(fi.stacks.Uptime) / float64(duration)
}

// MajorDamage is the beam's damage including absorbs.
func (fi *FocusingIris) MajorDamage() int { return fi.majorDamage }

// Statistic summarizes the minor's haste and uptime, plus the major's damage.
func (fi *FocusingIris) Statistic() model.Statistic {
	s := model.Statistic{
		Analyzer: fi.Name(),
		Title:    fmt.Sprintf("Essence of the Focusing Iris - Minor Rank %d", fi.rank),
		Category: model.CategoryItems,
		Position: optionalPosition(20),
		Fields: []model.Field{
			{Key: "average_haste", Label: "average Haste gained", Value: fi.AverageHaste(), Style: model.StyleNumber},
			{Key: "uptime", Label: "uptime", Value: fi.Uptime(), Style: model.StylePercentage},
		},
		Tooltip: []string{
			fmt.Sprintf("Focused Energy (Minor Rank %d) grants %s Haste per stack.", fi.rank, format.Thousands(fi.hastePerStack)),
		},
	}
	if fi.hasMajor {
		s.Fields = append(s.Fields, model.Field{
			Key: "major_damage", Label: "Major Rank damage", Value: float64(fi.majorDamage), Style: model.StyleDamage,
		})
		s.Tooltip = append(s.Tooltip,
			fmt.Sprintf("Focusing Iris (Major Rank %d) dealt %s damage.", fi.rank, format.Thousands(float64(fi.majorDamage))))
	}
	return s
}
