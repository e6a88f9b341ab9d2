package battle

import (
	"math"

	"github.com/KirkDiggler/wallet-arena/internal/engine/rules"
	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

const (
	defensePerMaxHP   = 0.02
	dodgePerDex       = 0.0003
	reflectPercentage = 0.5
)

// Fighter is the mutable, battle-scoped state of one side.
// HP and MP stay within [0, max] after every turn.
type Fighter struct {
	Snapshot entities.Snapshot
	Skill    rules.Skill
	HasSkill bool
	Passive  rules.Passive

	CurrentHP int32
	MaxHP     int32
	CurrentMP int32
	MaxMP     int32

	SkillCooldown int32
	IsStunned     bool
	IsReflecting  bool
	TurnsElapsed  int32

	// One-shot modifiers, reset to 1 once consumed by a damage resolution
	DamageDealtModifier    float64
	DamageReceivedModifier float64
}

// NewFighter derives battle state from a snapshot and applies battle-start passives
func NewFighter(s entities.Snapshot) *Fighter {
	skill, hasSkill := rules.SkillFor(s.Class)
	passive := rules.PassiveFor(s.Class)

	maxHP := s.Stats.HP
	if passive.MaxHPBonusPct > 0 {
		maxHP = int32(math.Floor(float64(maxHP) * (1 + passive.MaxHPBonusPct)))
	}
	maxHP = max(maxHP, 0)
	maxMP := max(s.Stats.MP, 0)

	f := &Fighter{
		Snapshot:               s,
		Skill:                  skill,
		HasSkill:               hasSkill,
		Passive:                passive,
		CurrentHP:              maxHP,
		MaxHP:                  maxHP,
		CurrentMP:              maxMP,
		MaxMP:                  maxMP,
		DamageDealtModifier:    1,
		DamageReceivedModifier: 1,
	}

	if passive.BattleStartHealPct > 0 {
		f.Heal(pct(f.MaxHP, passive.BattleStartHealPct))
	}

	return f
}

// Alive reports whether the fighter still has HP
func (f *Fighter) Alive() bool {
	return f.CurrentHP > 0
}

// Heal restores up to amount HP and returns how much was applied
func (f *Fighter) Heal(amount int32) int32 {
	if amount <= 0 {
		return 0
	}
	applied := min(amount, f.MaxHP-f.CurrentHP)
	f.CurrentHP += applied
	return applied
}

// TakeDamage removes HP, never below zero
func (f *Fighter) TakeDamage(amount int32) {
	if amount <= 0 {
		return
	}
	f.CurrentHP = max(f.CurrentHP-amount, 0)
}

// RestoreMP adds up to amount MP
func (f *Fighter) RestoreMP(amount int32) {
	if amount <= 0 {
		return
	}
	f.CurrentMP = min(f.CurrentMP+amount, f.MaxMP)
}

// LoseMP removes MP, never below zero
func (f *Fighter) LoseMP(amount int32) {
	if amount <= 0 {
		return
	}
	f.CurrentMP = max(f.CurrentMP-amount, 0)
}

// SkillCost is the passive-adjusted mp cost of the fighter's skill
func (f *Fighter) SkillCost() int32 {
	return rules.EffectiveMPCost(f.Snapshot.Class)
}

// CanUseSkill reports whether mp and cooldown allow the skill this turn
func (f *Fighter) CanUseSkill() bool {
	return f.HasSkill && f.SkillCooldown <= 0 && f.CurrentMP >= f.SkillCost()
}

// Defense is the flat damage reduction applied after multipliers
func (f *Fighter) Defense(halved bool) float64 {
	base := math.Floor(float64(f.MaxHP) * defensePerMaxHP)
	def := math.Round(base * (1 + f.Passive.DefenseBonus))
	if halved {
		def /= 2
	}
	return def
}

// DodgeChance is the probability of evading an incoming damaging action
func (f *Fighter) DodgeChance() float64 {
	return float64(f.Snapshot.Stats.Dex)*dodgePerDex + f.Passive.DodgeBonus
}

// CritChance is the basic-attack crit chance including passive bonus
func (f *Fighter) CritChance() float64 {
	return rules.BaseCritChance(f.Snapshot.Stats.Luck) + f.Passive.CritBonus
}

// CapBurst halves the part of a hit above the anti-burst threshold
func (f *Fighter) CapBurst(damage int32) int32 {
	if f.Passive.AntiBurstThreshold <= 0 {
		return damage
	}
	threshold := pct(f.MaxHP, f.Passive.AntiBurstThreshold)
	if damage <= threshold {
		return damage
	}
	return threshold + (damage-threshold)/2
}

// BonusDamage is the flat damage added after mitigation
func (f *Fighter) BonusDamage() int32 {
	if f.Passive.BonusDamageIntPct <= 0 {
		return 0
	}
	return pct(f.Snapshot.Stats.Int, f.Passive.BonusDamageIntPct)
}

// Apply folds a skill's state delta into the fighter
func (f *Fighter) Apply(delta rules.StateDelta) {
	f.Heal(delta.Heal)
	f.LoseMP(delta.MPLoss)
	f.DamageDealtModifier *= delta.DealtFactor()
	f.DamageReceivedModifier *= delta.ReceivedFactor()
	if delta.SetReflecting {
		f.IsReflecting = true
	}
}

func (f *Fighter) combatant() rules.Combatant {
	return rules.Combatant{
		Class:     f.Snapshot.Class,
		Stats:     f.Snapshot.Stats,
		CurrentHP: f.CurrentHP,
		MaxHP:     f.MaxHP,
		CurrentMP: f.CurrentMP,
		MaxMP:     f.MaxMP,
	}
}

// runTurnEnd applies turn-end passives
func (f *Fighter) runTurnEnd() {
	if f.Passive.TurnEndHealPct > 0 && f.Alive() {
		f.Heal(pct(f.MaxHP, f.Passive.TurnEndHealPct))
	}
	if interval := f.Passive.MPRecoveryInterval; interval > 0 && f.TurnsElapsed%interval == 0 {
		f.RestoreMP(pct(f.MaxMP, f.Passive.MPRecoveryPct))
	}
}

// pct returns floor(v * p)
func pct(v int32, p float64) int32 {
	return int32(math.Floor(float64(v) * p))
}
