package parser

// Spell, talent and essence IDs the analyzers listen for.
const (
	// Marksmanship hunter
	SpellAutoShot     = 75
	SpellVolleyTalent = 260243
	SpellVolleyDamage = 260247

	// Havoc demon hunter
	SpellImmolationAuraTalent      = 258920
	SpellImmolationAuraFirstStrike = 258921
	SpellImmolationAuraBuffDamage  = 258922

	// Essence of the Focusing Iris
	TraitFocusingIris             = 5
	SpellFocusedEnergyBuff        = 295248
	SpellFocusedAzeriteBeamDamage = 295261
)

// Statistic boxes without a fixed slot sort after the core ones.
const positionOptional = 1000

func optionalPosition(n int) int {
	return positionOptional + n
}
