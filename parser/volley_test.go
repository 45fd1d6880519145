package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wow-analyzer/model"
)

func volleyEvents() []model.Event {
	var events []model.Event
	for i := int64(1); i <= 8; i++ {
		events = append(events, damage(i*1000, SpellAutoShot, 50))
	}
	hit := damage(1050, SpellVolleyDamage, 100)
	hit.Absorbed = 10
	events = append(events,
		hit,
		damage(1150, SpellVolleyDamage, 100), // same proc, second target
		damage(3000, SpellVolleyDamage, 100),
	)
	return events
}

func TestVolley(t *testing.T) {
	p := parseReport(t,
		model.Combatant{Talents: []int{SpellVolleyTalent}},
		model.Fight{StartTime: 0, EndTime: 10000},
		sortedEvents(volleyEvents()))
	v := findAnalyzer[*Volley](t, p)

	require.True(t, v.Active())
	assert.Equal(t, 8, v.AutoShots())
	assert.Equal(t, 2, v.Procs())
	assert.Equal(t, 310, v.Damage())
	assert.Equal(t, 2.0, v.ExpectedProcs())

	luck, err := v.ProcLuck()
	require.NoError(t, err)
	// z = 0.5 / sqrt(1.5)
	assert.InDelta(t, 0.658, luck, 0.001)

	s := v.Statistic()
	assert.Equal(t, model.CategoryTalents, s.Category)
	f, ok := s.Field("proc_luck")
	require.True(t, ok)
	assert.Equal(t, luck, f.Value)
	assert.Contains(t, s.Tooltip, "You had 2 procs.")
	assert.Contains(t, s.Tooltip, "You had 100.0% procs of what you could expect to get over the encounter.")
	assert.Contains(t, s.Tooltip, "Because you had under 40 auto attacks and due to normal approximation these results have a margin of error of over 2%.")
}

func TestVolleyManyShotsWithinMargin(t *testing.T) {
	var events []model.Event
	for i := int64(0); i < 200; i++ {
		events = append(events, damage(i*1000, SpellAutoShot, 50))
		if i%4 == 0 {
			events = append(events, damage(i*1000+10, SpellVolleyDamage, 100))
		}
	}
	p := parseReport(t,
		model.Combatant{Talents: []int{SpellVolleyTalent}},
		model.Fight{StartTime: 0, EndTime: 200000},
		events)
	v := findAnalyzer[*Volley](t, p)

	assert.Equal(t, 50, v.Procs())
	assert.Contains(t, v.Statistic().Tooltip, "Due to normal approximation these results are within 2% margin of error.")
}

func TestVolleyNoAutoShots(t *testing.T) {
	p := parseReport(t,
		model.Combatant{Talents: []int{SpellVolleyTalent}},
		model.Fight{StartTime: 0, EndTime: 1000},
		nil)
	v := findAnalyzer[*Volley](t, p)

	s := v.Statistic()
	assert.Equal(t, []string{"You had 0 proc."}, s.Tooltip)
	_, ok := s.Field("proc_luck")
	assert.False(t, ok)
}

func TestVolleyMoreProcsThanShots(t *testing.T) {
	p := parseReport(t,
		model.Combatant{Talents: []int{SpellVolleyTalent}},
		model.Fight{StartTime: 0, EndTime: 10000},
		[]model.Event{
			damage(100, SpellAutoShot, 50),
			damage(1000, SpellVolleyDamage, 100),
			damage(5000, SpellVolleyDamage, 100),
		})
	v := findAnalyzer[*Volley](t, p)

	_, err := v.ProcLuck()
	require.Error(t, err)
	_, ok := v.Statistic().Field("proc_luck")
	assert.False(t, ok)
}

func TestVolleyInactiveWithoutTalent(t *testing.T) {
	p := parseReport(t, model.Combatant{}, model.Fight{EndTime: 10000}, sortedEvents(volleyEvents()))
	v := findAnalyzer[*Volley](t, p)

	assert.False(t, v.Active())
	assert.Zero(t, v.AutoShots())
	assert.Empty(t, p.Statistics())
}

func volleyShots(shots, procs int) []model.Event {
	var events []model.Event
	for i := 0; i < shots; i++ {
		ts := int64(i) * 1000
		events = append(events, damage(ts, SpellAutoShot, 50))
		if i < procs {
			events = append(events, damage(ts+10, SpellVolleyDamage, 100))
		}
	}
	return events
}

const (
	luckiestLine   = "You had so many procs that the chance of you getting fewer procs than what you had on this attempt is going to be de facto 100%. Consider yourself the luckiest player alive."
	unluckiestLine = "You had so few procs that the chance of you getting fewer procs than what you had on this attempt is going to be de facto 0%. Consider yourself the unluckiest player alive."
	marginLine     = "Due to normal approximation these results are within 2% margin of error."
)

func TestVolleyLuckiest(t *testing.T) {
	p := parseReport(t,
		model.Combatant{Talents: []int{SpellVolleyTalent}},
		model.Fight{StartTime: 0, EndTime: 200000},
		volleyShots(200, 200))
	v := findAnalyzer[*Volley](t, p)

	luck, err := v.ProcLuck()
	require.NoError(t, err)
	assert.Equal(t, 1.0, luck)

	tooltip := v.Statistic().Tooltip
	assert.Equal(t, luckiestLine, tooltip[len(tooltip)-1])
	assert.NotContains(t, tooltip, unluckiestLine)
	assert.NotContains(t, tooltip, marginLine)
}

func TestVolleyUnluckiest(t *testing.T) {
	p := parseReport(t,
		model.Combatant{Talents: []int{SpellVolleyTalent}},
		model.Fight{StartTime: 0, EndTime: 200000},
		volleyShots(200, 0))
	v := findAnalyzer[*Volley](t, p)

	luck, err := v.ProcLuck()
	require.NoError(t, err)
	assert.Equal(t, 0.0, luck)

	tooltip := v.Statistic().Tooltip
	assert.Equal(t, unluckiestLine, tooltip[len(tooltip)-1])
	assert.NotContains(t, tooltip, luckiestLine)
	assert.NotContains(t, tooltip, marginLine)
}

func TestVolleyDeepTailInsideCutoffIsNotUnluckiest(t *testing.T) {
	// 126 shots and no procs: z is about -6.38, where the series rounds to 0
	p := parseReport(t,
		model.Combatant{Talents: []int{SpellVolleyTalent}},
		model.Fight{StartTime: 0, EndTime: 126000},
		volleyShots(126, 0))
	v := findAnalyzer[*Volley](t, p)

	luck, err := v.ProcLuck()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, luck, 5e-9)

	tooltip := v.Statistic().Tooltip
	assert.NotContains(t, tooltip, unluckiestLine)
	assert.Equal(t, marginLine, tooltip[len(tooltip)-1])
}

func TestVolleyIgnoresPrePullShots(t *testing.T) {
	events := append(volleyShots(4, 4), damage(20000, SpellAutoShot, 50)) // 0..3010 pre-pull, 20000 after the kill
	events = append(events, damage(6000, SpellAutoShot, 50), damage(6010, SpellVolleyDamage, 100))
	p := parseReport(t,
		model.Combatant{Talents: []int{SpellVolleyTalent}},
		model.Fight{StartTime: 5000, EndTime: 10000},
		sortedEvents(events))
	v := findAnalyzer[*Volley](t, p)

	assert.Equal(t, 1, v.AutoShots())
	assert.Equal(t, 1, v.Procs())
	assert.Equal(t, 100, v.Damage())
}
