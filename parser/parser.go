// Package parser feeds a fight's combat events to the analyzers and
// collects the statistics they produce.
package parser

import (
	"context"
	"fmt"
	"sort"

	dp "github.com/markus-wa/godispatch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"wow-analyzer/model"
)

// Analyzer is a module that listens to events and summarizes them.
type Analyzer interface {
	// Name identifies the analyzer in logs and exports.
	Name() string
	// Active reports whether the selected combatant can use the analyzed
	// talent/item. Inactive analyzers register no handlers.
	Active() bool
	// Statistic summarizes what was seen. Only called after Parse.
	Statistic() model.Statistic
}

// Constructor builds an analyzer bound to a parser.
type Constructor func(p *Parser) Analyzer

// DefaultAnalyzers returns constructors for every built-in analyzer.
func DefaultAnalyzers() []Constructor {
	return []Constructor{
		func(p *Parser) Analyzer { return NewVolley(p) },
		func(p *Parser) Analyzer { return NewImmolationAura(p) },
		func(p *Parser) Analyzer { return NewFocusingIris(p) },
	}
}

// Parser dispatches one report's events to the analyzers registered on it.
type Parser struct {
	report     *model.Report
	dispatcher dp.Dispatcher
	analyzers  []Analyzer
	logger     *zap.Logger
	registerer prometheus.Registerer

	dispatched   *prometheus.CounterVec
	unknownTypes map[model.EventType]bool
	parsed       bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRegisterer registers the parser's metrics on reg. Without it the
// metrics go to a private registry nobody scrapes.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(p *Parser) {
		if reg != nil {
			p.registerer = reg
		}
	}
}

// NewParser creates a parser for report. Events must already be in
// timestamp order; DecodeReport takes care of that.
func NewParser(report *model.Report, opts ...Option) *Parser {
	p := &Parser{
		report:       report,
		logger:       zap.NewNop(),
		registerer:   prometheus.NewRegistry(),
		unknownTypes: make(map[model.EventType]bool),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.dispatched = promauto.With(p.registerer).NewCounterVec(prometheus.CounterOpts{
		Name: "wowa_events_dispatched_total",
		Help: "Combat events dispatched to analyzers, by event type.",
	}, []string{"type"})

	return p
}

// Add constructs and attaches analyzers.
func (p *Parser) Add(constructors ...Constructor) {
	for _, newAnalyzer := range constructors {
		a := newAnalyzer(p)
		p.logger.Debug("Analyzer attached",
			zap.String("analyzer", a.Name()),
			zap.Bool("active", a.Active()))
		p.analyzers = append(p.analyzers, a)
	}
}

// On registers an event handler. handler must be a func taking exactly
// one typed event, e.g. func(model.DamageEvent).
func (p *Parser) On(handler any) {
	p.dispatcher.RegisterHandler(handler)
}

// Selected returns the combatant being analyzed.
func (p *Parser) Selected() *model.Combatant {
	return &p.report.Combatant
}

// Fight returns the analyzed fight.
func (p *Parser) Fight() model.Fight {
	return p.report.Fight
}

// FightDuration returns the fight length in ms.
func (p *Parser) FightDuration() int64 {
	return p.report.Fight.Duration()
}

// Logger returns the parser's logger for analyzers to use.
func (p *Parser) Logger() *zap.Logger {
	return p.logger
}

// Parse dispatches the fight's events in order, followed by a fight end
// event if the report did not carry one. Events after the fight end are
// dropped. Before the pull only buff events are kept, so buffs already up
// at the start are tracked while pre-pull damage and resources are not.
// It stops early when ctx is cancelled.
func (p *Parser) Parse(ctx context.Context) error {
	if p.parsed {
		return fmt.Errorf("report for fight %d already parsed", p.report.Fight.ID)
	}
	p.parsed = true

	fight := p.report.Fight
	sawEnd := false
	dropped := 0
	for i, ev := range p.report.Events {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("parse aborted at event %d: %w", i, err)
		}
		if sawEnd || ev.Timestamp > fight.EndTime ||
			(ev.Timestamp < fight.StartTime && !carriesBuffState(ev.Type)) {
			dropped++
			continue
		}
		if ev.Type == model.EventFightEnd {
			sawEnd = true
		}
		p.dispatch(ev)
	}

	if !sawEnd {
		p.dispatch(model.Event{
			Timestamp: fight.EndTime,
			Type:      model.EventFightEnd,
			SourceID:  p.report.Combatant.ID,
		})
	}

	p.logger.Info("Fight parsed",
		zap.Int("fight", fight.ID),
		zap.Int("events", len(p.report.Events)),
		zap.Int("outsideFight", dropped),
		zap.Int64("durationMs", p.FightDuration()))
	return nil
}

func carriesBuffState(t model.EventType) bool {
	switch t {
	case model.EventApplyBuff, model.EventRemoveBuff, model.EventApplyBuffStack:
		return true
	default:
		return false
	}
}

func (p *Parser) dispatch(ev model.Event) {
	var typed any
	switch ev.Type {
	case model.EventDamage:
		typed = model.DamageEvent{Event: ev}
	case model.EventEnergize:
		typed = model.EnergizeEvent{Event: ev}
	case model.EventApplyBuff:
		typed = model.ApplyBuffEvent{Event: ev}
	case model.EventRemoveBuff:
		typed = model.RemoveBuffEvent{Event: ev}
	case model.EventApplyBuffStack:
		typed = model.ApplyBuffStackEvent{Event: ev}
	case model.EventFightEnd:
		typed = model.FightEndEvent{Event: ev}
	default:
		if !p.unknownTypes[ev.Type] {
			p.unknownTypes[ev.Type] = true
			p.logger.Warn("Skipping unknown event type", zap.String("type", string(ev.Type)))
		}
		return
	}

	// Analyzers only care about the selected player's own events.
	if ev.Type != model.EventFightEnd && ev.SourceID != p.report.Combatant.ID {
		return
	}

	p.dispatched.WithLabelValues(string(ev.Type)).Inc()
	p.dispatcher.Dispatch(typed)
}

// Statistics returns the statistics of all active analyzers, ordered by
// position and then by name.
func (p *Parser) Statistics() []model.Statistic {
	out := make([]model.Statistic, 0, len(p.analyzers))
	for _, a := range p.analyzers {
		if !a.Active() {
			continue
		}
		out = append(out, a.Statistic())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Analyzer < out[j].Analyzer
	})
	return out
}
