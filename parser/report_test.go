package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wow-analyzer/model"
)

func TestDecodeReport(t *testing.T) {
	input := `{
		"fight": {"id": 3, "startTime": 1000},
		"combatant": {"id": 1, "name": "Hunter", "talents": [260243], "essences": {"5": {"rank": 2, "major": true}}, "neckItemLevel": 480},
		"events": [
			{"timestamp": 3000, "type": "damage", "sourceID": 1, "abilityID": 75, "amount": 10},
			{"timestamp": 2000, "type": "damage", "sourceID": 1, "abilityID": 75, "amount": 20},
			{"timestamp": 2000, "type": "energize", "sourceID": 1, "abilityID": 258922, "resourceChange": 20, "waste": 5}
		]
	}`

	report, err := DecodeReport(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, int64(3000), report.Fight.EndTime, "end time taken from last event")
	assert.True(t, report.Combatant.HasTalent(SpellVolleyTalent))
	assert.Equal(t, 2, report.Combatant.EssenceRank(TraitFocusingIris))
	assert.True(t, report.Combatant.HasMajor(TraitFocusingIris))

	require.Len(t, report.Events, 3)
	assert.Equal(t, 20, report.Events[0].Amount)
	assert.Equal(t, model.EventEnergize, report.Events[1].Type, "stable sort keeps log order")
	assert.Equal(t, int64(3000), report.Events[2].Timestamp)
}

func TestDecodeReportErrors(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		_, err := DecodeReport(strings.NewReader(`{"fight":`))
		assert.Error(t, err)
	})

	t.Run("fight ends before start", func(t *testing.T) {
		_, err := DecodeReport(strings.NewReader(`{"fight": {"startTime": 5000, "endTime": 1000}}`))
		assert.ErrorIs(t, err, ErrInvalidReport)
	})
}
