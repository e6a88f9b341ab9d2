// Package rules holds the per-class skill and passive tables.
//
// Skills are pure: they read a SkillContext and return a SkillOutcome made of
// the result record plus the state deltas the turn engine should apply to
// each side. Passives are plain coefficient bundles applied by the engine.
package rules

import (
	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

const (
	// CritMultiplier is applied to damage on a critical hit
	CritMultiplier = 1.8

	baseCritChance   = 0.08
	critChancePerLuk = 0.0003
)

// Rand is the random stream skills draw from
type Rand interface {
	Float64() float64
}

// Combatant is a read-only view of one side of the battle
type Combatant struct {
	Class     entities.ClassID
	Stats     entities.Stats
	CurrentHP int32
	MaxHP     int32
	CurrentMP int32
	MaxMP     int32
}

// MissingHP returns how much the combatant can be healed
func (c Combatant) MissingHP() int32 {
	return c.MaxHP - c.CurrentHP
}

// SkillContext is the input to a skill execution
type SkillContext struct {
	Actor  Combatant
	Target Combatant
	Rand   Rand
}

// SkillResult is what a skill produced before mitigation
type SkillResult struct {
	Damage    int32 `json:"damage"`
	Healed    int32 `json:"healed"`
	IsCrit    bool  `json:"is_crit"`
	IsStun    bool  `json:"is_stun"`
	MPDrained int32 `json:"mp_drained"`
	Reflected int32 `json:"reflected"`
}

// StateDelta is a change the engine applies to one fighter.
// Zero multipliers mean "leave unchanged".
type StateDelta struct {
	Heal                     int32
	MPLoss                   int32
	DamageDealtMultiplier    float64
	DamageReceivedMultiplier float64
	SetReflecting            bool
}

// DealtFactor returns the damage-dealt multiplier to fold in
func (d StateDelta) DealtFactor() float64 {
	if d.DamageDealtMultiplier == 0 {
		return 1
	}
	return d.DamageDealtMultiplier
}

// ReceivedFactor returns the damage-received multiplier to fold in
func (d StateDelta) ReceivedFactor() float64 {
	if d.DamageReceivedMultiplier == 0 {
		return 1
	}
	return d.DamageReceivedMultiplier
}

// SkillOutcome is the full effect of one skill execution
type SkillOutcome struct {
	Result SkillResult
	Actor  StateDelta
	Target StateDelta
}

// Skill is a class's active ability
type Skill struct {
	Name     string
	MPCost   int32
	Cooldown int32
	// UsesGenericCritModel is false for skills with their own crit rules;
	// crit-bonus passives only re-roll skills that use the generic model.
	UsesGenericCritModel bool
	// HalvesTargetDefense halves the target's defense when this skill's damage is mitigated
	HalvesTargetDefense bool
	Execute             func(ctx SkillContext) SkillOutcome
}

// Passive is a class's always-on coefficient bundle
type Passive struct {
	Name string

	// Battle start
	MaxHPBonusPct      float64
	BattleStartHealPct float64

	// Turn end
	TurnEndHealPct     float64
	MPRecoveryInterval int32
	MPRecoveryPct      float64

	// Offense
	CritBonus         float64
	MPCostReduction   float64
	BonusDamageIntPct float64

	// Defense
	DodgeBonus         float64
	DefenseBonus       float64
	AntiBurstThreshold float64
}

// BaseCritChance is the generic crit chance for a luck value
func BaseCritChance(luck int32) float64 {
	return baseCritChance + float64(luck)*critChancePerLuk
}
