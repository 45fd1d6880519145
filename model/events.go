package model

// EventType is the log's name for an event kind.
type EventType string

const (
	EventDamage         EventType = "damage"
	EventEnergize       EventType = "energize"
	EventApplyBuff      EventType = "applybuff"
	EventRemoveBuff     EventType = "removebuff"
	EventApplyBuffStack EventType = "applybuffstack"
	EventFightEnd       EventType = "fightend"
)

// Event is a single combat log line as decoded from a report.
// Which fields are meaningful depends on Type.
type Event struct {
	Timestamp int64     `json:"timestamp"` // ms since report start
	Type      EventType `json:"type"`
	SourceID  int       `json:"sourceID"`
	TargetID  int       `json:"targetID,omitempty"`
	AbilityID int       `json:"abilityID"`

	// Damage
	Amount   int `json:"amount,omitempty"`
	Absorbed int `json:"absorbed,omitempty"`

	// Energize
	ResourceChange int `json:"resourceChange,omitempty"`
	Waste          int `json:"waste,omitempty"`

	// Buff stacks
	Stack int `json:"stack,omitempty"`
}

// Typed events handed to analyzer handlers. Each wraps the raw Event so
// handlers can register for exactly the kinds they care about.

type DamageEvent struct{ Event }

type EnergizeEvent struct{ Event }

type ApplyBuffEvent struct{ Event }

type RemoveBuffEvent struct{ Event }

type ApplyBuffStackEvent struct{ Event }

type FightEndEvent struct{ Event }

// Total is the full damage of the hit, including what shields absorbed.
func (e DamageEvent) Total() int {
	return e.Amount + e.Absorbed
}

// Effective is the resource that actually landed.
func (e EnergizeEvent) Effective() int {
	return e.ResourceChange - e.Waste
}
