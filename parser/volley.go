package parser

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"wow-analyzer/format"
	"wow-analyzer/model"
	"wow-analyzer/stats"
)

// Volley tracks the Volley talent: auto shots have a 25% chance to rain
// arrows on the target. It counts procs against auto shots and judges
// how lucky the player got.
type Volley struct {
	parser *Parser
	active bool

	damage    int
	autoShots int
	procs     int
	lastHit   int64
	hasHit    bool
}

// NewVolley creates the analyzer. It is inactive without the talent.
func NewVolley(p *Parser) *Volley {
	v := &Volley{parser: p}
	v.active = p.Selected().HasTalent(SpellVolleyTalent)
	if !v.active {
		return v
	}
	p.On(v.onDamage)
	return v
}

// Name identifies the analyzer in logs and exports.
func (v *Volley) Name() string { return "volley" }

// Active reports whether the combatant has the Volley talent.
func (v *Volley) Active() bool { return v.active }

func (v *Volley) onDamage(e model.DamageEvent) {
	switch e.AbilityID {
	case SpellVolleyDamage:
		v.damage += e.Total()
		// one proc hits every target in the area; group those hits
		if !v.hasHit || e.Timestamp > v.lastHit+stats.VolleyBufferMs {
			v.procs++
			v.lastHit = e.Timestamp
			v.hasHit = true
		}
	case SpellAutoShot:
		v.autoShots++
	}
}

// Procs returns the number of distinct Volley procs.
func (v *Volley) Procs() int { return v.procs }

// AutoShots returns the number of auto shots fired.
func (v *Volley) AutoShots() int { return v.autoShots }

// Damage returns total Volley damage including absorbs.
func (v *Volley) Damage() int { return v.damage }

// ExpectedProcs is the mean number of procs for the auto shots fired.
func (v *Volley) ExpectedProcs() float64 {
	return float64(v.autoShots) * stats.VolleyProcChance
}

// ProcLuck estimates the chance of getting this many procs or fewer.
func (v *Volley) ProcLuck() (float64, error) {
	return stats.EstimateCumulativeBinomialProbability(v.autoShots, stats.VolleyProcChance, v.procs)
}

// Statistic summarizes damage, procs and how lucky the proc count was.
func (v *Volley) Statistic() model.Statistic {
	s := model.Statistic{
		Analyzer: v.Name(),
		Title:    "Volley",
		Category: model.CategoryTalents,
		Position: optionalPosition(13),
		Fields: []model.Field{
			{Key: "damage", Label: "damage", Value: float64(v.damage), Style: model.StyleDamage},
			{Key: "procs", Label: "procs", Value: float64(v.procs), Style: model.StyleNumber},
			{Key: "expected_procs", Label: "expected procs", Value: v.ExpectedProcs(), Style: model.StyleDecimal},
		},
	}

	procWord := "proc"
	if v.procs > 1 {
		procWord = "procs"
	}
	s.Tooltip = append(s.Tooltip, fmt.Sprintf("You had %d %s.", v.procs, procWord))
	if v.autoShots == 0 {
		return s
	}
	expected := v.ExpectedProcs()
	s.Tooltip = append(s.Tooltip,
		fmt.Sprintf("You had %s%% procs of what you could expect to get over the encounter.",
			format.Percentage(float64(v.procs)/expected, 1)),
		fmt.Sprintf("You had a total of %d procs, and your expected amount of procs was %s.",
			v.procs, format.Number(expected)),
	)

	luck, err := v.ProcLuck()
	if err != nil {
		// more procs than auto shots: the log is missing auto shot events
		v.parser.Logger().Warn("Cannot estimate Volley proc luck",
			zap.Int("procs", v.procs),
			zap.Int("autoShots", v.autoShots),
			zap.Error(err))
		return s
	}

	s.Fields = append(s.Fields, model.Field{
		Key: "proc_luck", Label: "chance of this many procs or fewer", Value: luck, Style: model.StylePercentage,
	})
	s.Tooltip = append(s.Tooltip, fmt.Sprintf(
		"You have a ~%s%% chance of getting this amount of procs or fewer in the future with this amount of auto attacks.",
		format.Percentage(luck, 2)))

	// Only the short-circuited tails are de facto certain; the series can
	// clamp to 0 or 1 a little inside the cutoff.
	z, _ := stats.CorrectedZScore(v.autoShots, stats.VolleyProcChance, v.procs)
	switch {
	case z > stats.ZCutoff:
		s.Tooltip = append(s.Tooltip, "You had so many procs that the chance of you getting fewer procs than what you had on this attempt is going to be de facto 100%. Consider yourself the luckiest player alive.")
	case z < -stats.ZCutoff:
		s.Tooltip = append(s.Tooltip, "You had so few procs that the chance of you getting fewer procs than what you had on this attempt is going to be de facto 0%. Consider yourself the unluckiest player alive.")
	case stats.MeetsApproximationRule(v.autoShots, stats.VolleyProcChance):
		s.Tooltip = append(s.Tooltip, "Due to normal approximation these results are within 2% margin of error.")
	default:
		minShots := math.Ceil(stats.MinExpectedForApproximation / stats.VolleyProcChance)
		s.Tooltip = append(s.Tooltip, fmt.Sprintf(
			"Because you had under %d auto attacks and due to normal approximation these results have a margin of error of over 2%%.",
			int(minShots)))
	}

	return s
}
