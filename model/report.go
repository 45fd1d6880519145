package model

// Fight bounds an encounter within a report, in ms since report start.
type Fight struct {
	ID        int   `json:"id"`
	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`
}

// Duration returns the fight length in ms.
func (f Fight) Duration() int64 {
	return f.EndTime - f.StartTime
}

// Essence is a slotted Heart of Azeroth essence.
type Essence struct {
	Rank  int  `json:"rank"`
	Major bool `json:"major"`
}

// Combatant is the selected player and the gear/talent info analyzers
// use to decide whether they apply.
type Combatant struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Talents       []int           `json:"talents"`
	Essences      map[int]Essence `json:"essences"` // keyed by trait ID
	NeckItemLevel int             `json:"neckItemLevel"`
}

// HasTalent reports whether the talent spell is selected.
func (c *Combatant) HasTalent(spellID int) bool {
	for _, id := range c.Talents {
		if id == spellID {
			return true
		}
	}
	return false
}

// HasEssence reports whether the essence is slotted at all.
func (c *Combatant) HasEssence(traitID int) bool {
	_, ok := c.Essences[traitID]
	return ok
}

// HasMajor reports whether the essence is slotted in the major slot.
func (c *Combatant) HasMajor(traitID int) bool {
	return c.Essences[traitID].Major
}

// EssenceRank returns the essence rank, or 0 if not slotted.
func (c *Combatant) EssenceRank(traitID int) int {
	return c.Essences[traitID].Rank
}

// Report is one fight's worth of events for a selected combatant.
type Report struct {
	Fight     Fight     `json:"fight"`
	Combatant Combatant `json:"combatant"`
	Events    []Event   `json:"events"`
}
