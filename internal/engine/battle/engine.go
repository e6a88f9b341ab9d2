// Package battle runs the deterministic turn-based battle between two fighters.
//
// Simulate is a pure function of its input: the same two snapshots and nonce
// always produce the same action log and winner, regardless of where or when
// it runs. It performs no I/O and holds no state between calls, so concurrent
// calls are safe.
package battle

import (
	"math"

	"github.com/KirkDiggler/wallet-arena/internal/engine/matchup"
	"github.com/KirkDiggler/wallet-arena/internal/engine/rules"
	"github.com/KirkDiggler/wallet-arena/internal/entities"
	"github.com/KirkDiggler/wallet-arena/internal/pkg/prng"
)

const (
	// MaxRounds caps the battle; each round both fighters act once
	MaxRounds = 20
	// MaxActions is the most actions a battle can emit
	MaxActions = MaxRounds * 2

	basicStrRatio  = 0.3
	basicLuckRatio = 0.1
	basicDexRatio  = 0.05
	initiativeDex  = 0.3
)

// randSource is the stream every roll in a battle is drawn from
type randSource interface {
	Float64() float64
}

type engine struct {
	fighters [2]*Fighter
	order    [2]int
	rng      randSource
	matchup  matchup.Matchup
	narrator Narrator
	actions  []Action
}

// Simulate fights the two snapshots and returns the full result
func Simulate(input *SimulateInput) *Result {
	a, b := input.Fighters[0], input.Fighters[1]
	seed, rng := prng.ForBattle(a.Address, b.Address, input.Nonce)

	e := newEngine(a, b, rng, input.Narrator)
	e.run()

	winner, reason := decideWinner(e.fighters)
	w := e.fighters[winner]

	return &Result{
		Fighters:        input.Fighters,
		Winner:          winner,
		Actions:         e.actions,
		TotalTurns:      len(e.actions),
		WinnerHP:        w.CurrentHP,
		WinnerHPPercent: hpPercent(w),
		EndReason:       reason,
		Matchup:         e.matchup,
		Nonce:           input.Nonce,
		Seed:            seed,
	}
}

func newEngine(a, b entities.Snapshot, rng randSource, narrator Narrator) *engine {
	e := &engine{
		fighters: [2]*Fighter{NewFighter(a), NewFighter(b)},
		rng:      rng,
		matchup:  matchup.Resolve(a.Class, b.Class),
		narrator: narrator,
		actions:  make([]Action, 0, MaxActions),
	}
	e.order = e.turnOrder()
	return e
}

// turnOrder returns the acting order for every round
func (e *engine) turnOrder() [2]int {
	first := e.firstMover()
	return [2]int{first, 1 - first}
}

func (e *engine) firstMover() int {
	s0 := initiative(e.fighters[0])
	s1 := initiative(e.fighters[1])
	switch {
	case s0 > s1:
		return 0
	case s1 > s0:
		return 1
	}

	a0 := e.fighters[0].Snapshot.NormalizedAddress()
	a1 := e.fighters[1].Snapshot.NormalizedAddress()
	switch {
	case a0 < a1:
		return 0
	case a1 < a0:
		return 1
	}

	if e.rng.Float64() < 0.5 {
		return 0
	}
	return 1
}

func initiative(f *Fighter) float64 {
	return float64(f.Snapshot.Stats.Luck) + float64(f.Snapshot.Stats.Dex)*initiativeDex
}

func (e *engine) over() bool {
	return !e.fighters[0].Alive() || !e.fighters[1].Alive()
}

func (e *engine) run() {
	for round := 1; round <= MaxRounds; round++ {
		for _, idx := range e.order {
			if e.over() {
				return
			}
			e.takeTurn(idx)
		}
	}
}

// outcome is the working record of one resolution
type outcome struct {
	actionType  ActionType
	skill       *rules.Skill
	result      rules.SkillResult
	halveDef    bool
	genericCrit bool
}

func (e *engine) takeTurn(idx int) {
	actor, target := e.fighters[idx], e.fighters[1-idx]
	actor.TurnsElapsed++

	if actor.IsStunned {
		actor.IsStunned = false
		e.emit(idx, &outcome{actionType: ActionStunned}, rules.SkillResult{}, false)
		actor.runTurnEnd()
		return
	}

	o := e.chooseAndExecute(actor, target)

	// Crit-bonus passives re-roll generic-model skills that did not crit
	if o.actionType == ActionSkill && o.genericCrit && actor.Passive.CritBonus > 0 &&
		!o.result.IsCrit && o.result.Damage > 0 {
		if e.rng.Float64() < actor.Passive.CritBonus {
			o.result.IsCrit = true
			o.result.Damage = int32(math.Floor(float64(o.result.Damage) * rules.CritMultiplier))
		}
	}

	final := rules.SkillResult{Healed: o.result.Healed, MPDrained: o.result.MPDrained, IsCrit: o.result.IsCrit}
	dodged := false
	if o.result.Damage > 0 {
		dodged = e.rng.Float64() < target.DodgeChance()
	}

	if o.result.Damage > 0 && !dodged {
		final.Damage = e.mitigate(idx, o)
		target.TakeDamage(final.Damage)
		if o.result.IsStun {
			target.IsStunned = true
			final.IsStun = true
		}

		if target.IsReflecting {
			final.Reflected = int32(math.Floor(float64(final.Damage) * reflectPercentage))
			actor.TakeDamage(final.Reflected)
			target.IsReflecting = false
		}

		actor.DamageDealtModifier = 1
		target.DamageReceivedModifier = 1
	}
	if dodged {
		final.IsCrit = false
	}

	e.emit(idx, o, final, dodged)

	if actor.SkillCooldown > 0 {
		actor.SkillCooldown--
	}

	if e.over() {
		return
	}
	actor.runTurnEnd()
}

// chooseAndExecute picks skill or basic attack and applies the skill's state deltas
func (e *engine) chooseAndExecute(actor, target *Fighter) *outcome {
	if !actor.CanUseSkill() {
		return &outcome{
			actionType: ActionBasicAttack,
			result:     e.basicAttack(actor),
		}
	}

	skill := actor.Skill
	actor.CurrentMP -= actor.SkillCost()
	actor.SkillCooldown = skill.Cooldown

	res := skill.Execute(rules.SkillContext{
		Actor:  actor.combatant(),
		Target: target.combatant(),
		Rand:   e.rng,
	})
	actor.Apply(res.Actor)
	target.Apply(res.Target)

	return &outcome{
		actionType:  ActionSkill,
		skill:       &skill,
		result:      res.Result,
		halveDef:    skill.HalvesTargetDefense,
		genericCrit: skill.UsesGenericCritModel,
	}
}

func (e *engine) basicAttack(actor *Fighter) rules.SkillResult {
	st := actor.Snapshot.Stats
	raw := float64(st.Str)*basicStrRatio +
		e.rng.Float64()*float64(st.Luck)*basicLuckRatio +
		e.rng.Float64()*float64(st.Dex)*basicDexRatio
	dmg := math.Floor(raw)

	crit := e.rng.Float64() < actor.CritChance()
	if crit {
		dmg = math.Floor(dmg * rules.CritMultiplier)
	}

	return rules.SkillResult{Damage: int32(dmg), IsCrit: crit}
}

// mitigate runs the damage pipeline and returns the damage to apply
func (e *engine) mitigate(idx int, o *outcome) int32 {
	actor, target := e.fighters[idx], e.fighters[1-idx]

	dmg := float64(o.result.Damage)
	dmg *= e.matchup.For(idx).DealMultiplier()
	dmg *= e.matchup.For(1 - idx).ReceiveMultiplier()
	dmg *= actor.DamageDealtModifier
	dmg *= target.DamageReceivedModifier

	final := int32(math.Floor(dmg - target.Defense(o.halveDef)))
	if final < 1 {
		final = 1
	}
	final = target.CapBurst(final)

	return final + actor.BonusDamage()
}

func (e *engine) emit(idx int, o *outcome, res rules.SkillResult, dodged bool) {
	actor, target := e.fighters[idx], e.fighters[1-idx]

	action := Action{
		Turn:          len(e.actions) + 1,
		ActorIndex:    idx,
		Type:          o.actionType,
		Damage:        res.Damage,
		Healed:        res.Healed,
		Reflected:     res.Reflected,
		MPDrained:     res.MPDrained,
		IsCrit:        res.IsCrit,
		IsStun:        res.IsStun,
		IsDodge:       dodged,
		ActorHPAfter:  actor.CurrentHP,
		TargetHPAfter: target.CurrentHP,
	}
	if o.skill != nil {
		action.SkillName = o.skill.Name
	}

	if e.narrator != nil {
		action.Narrative = e.narrator.Narrate(&NarrativeInput{
			Type:       action.Type,
			SkillName:  action.SkillName,
			Damage:     action.Damage,
			Healed:     action.Healed,
			Reflected:  action.Reflected,
			MPDrained:  action.MPDrained,
			IsCrit:     action.IsCrit,
			IsStun:     action.IsStun,
			IsDodge:    action.IsDodge,
			ActorName:  actor.Snapshot.DisplayName(),
			TargetName: target.Snapshot.DisplayName(),
			ActorClass: actor.Snapshot.Class,
		})
	}

	e.actions = append(e.actions, action)
}
