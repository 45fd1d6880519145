package parser

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"wow-analyzer/model"
)

const playerID = 1

func damage(ts int64, ability, amount int) model.Event {
	return model.Event{Timestamp: ts, Type: model.EventDamage, SourceID: playerID, AbilityID: ability, Amount: amount}
}

func energize(ts int64, ability, gain, waste int) model.Event {
	return model.Event{Timestamp: ts, Type: model.EventEnergize, SourceID: playerID, AbilityID: ability, ResourceChange: gain, Waste: waste}
}

func buff(ts int64, typ model.EventType, ability, stack int) model.Event {
	return model.Event{Timestamp: ts, Type: typ, SourceID: playerID, AbilityID: ability, Stack: stack}
}

// parseReport runs the default analyzers over events and returns the parser.
func parseReport(t *testing.T, combatant model.Combatant, fight model.Fight, events []model.Event) *Parser {
	t.Helper()
	combatant.ID = playerID
	p := NewParser(&model.Report{Fight: fight, Combatant: combatant, Events: events})
	p.Add(DefaultAnalyzers()...)
	require.NoError(t, p.Parse(context.Background()))
	return p
}

func findAnalyzer[T Analyzer](t *testing.T, p *Parser) T {
	t.Helper()
	for _, a := range p.analyzers {
		if typed, ok := a.(T); ok {
			return typed
		}
	}
	var zero T
	t.Fatalf("analyzer %T not attached", zero)
	return zero
}

func sortedEvents(events []model.Event) []model.Event {
	out := append([]model.Event(nil), events...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}
