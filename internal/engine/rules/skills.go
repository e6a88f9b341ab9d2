package rules

import (
	"math"

	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

const (
	heavyStrikeStunChance = 0.15
	arbitrageSecondCrit   = 0.35
	snipeCritFavored      = 0.80
	snipeCritUnfavored    = 0.25
	portalStrikeDrain     = 10
)

var skills = map[entities.ClassID]Skill{
	entities.ClassWarrior: {
		Name:                 "Heavy Strike",
		MPCost:               15,
		Cooldown:             2,
		UsesGenericCritModel: true,
		Execute:              heavyStrike,
	},
	entities.ClassRogue: {
		Name:     "Arbitrage",
		MPCost:   18,
		Cooldown: 3,
		Execute:  arbitrage,
	},
	entities.ClassHunter: {
		Name:     "NFT Snipe",
		MPCost:   18,
		Cooldown: 2,
		Execute:  nftSnipe,
	},
	entities.ClassMerchant: {
		Name:                 "Hostile Takeover",
		MPCost:               20,
		Cooldown:             3,
		UsesGenericCritModel: true,
		Execute:              hostileTakeover,
	},
	entities.ClassPriest: {
		Name:                 "Divine Shield",
		MPCost:               18,
		Cooldown:             3,
		UsesGenericCritModel: true,
		Execute:              divineShield,
	},
	entities.ClassElderWizard: {
		Name:                 "Ancient Spell",
		MPCost:               35,
		Cooldown:             3,
		UsesGenericCritModel: true,
		HalvesTargetDefense:  true,
		Execute:              ancientSpell,
	},
	entities.ClassGuardian: {
		Name:                 "Counter Stance",
		MPCost:               15,
		Cooldown:             2,
		UsesGenericCritModel: true,
		Execute:              counterStance,
	},
	entities.ClassSummoner: {
		Name:                 "Portal Strike",
		MPCost:               22,
		Cooldown:             3,
		UsesGenericCritModel: true,
		Execute:              portalStrike,
	},
}

// SkillFor returns the skill of a class
func SkillFor(class entities.ClassID) (Skill, bool) {
	s, ok := skills[class]
	return s, ok
}

// EffectiveMPCost is the skill cost after the class's passive reduction
func EffectiveMPCost(class entities.ClassID) int32 {
	s, ok := skills[class]
	if !ok {
		return 0
	}
	p := PassiveFor(class)
	if p.MPCostReduction == 0 {
		return s.MPCost
	}
	return int32(math.Round(float64(s.MPCost) * (1 - p.MPCostReduction)))
}

// rollDamage applies a crit roll at chance to base and floors the result
func rollDamage(base, chance float64, r Rand) (int32, bool) {
	crit := r.Float64() < chance
	if crit {
		base *= CritMultiplier
	}
	return int32(math.Floor(base)), crit
}

func heavyStrike(ctx SkillContext) SkillOutcome {
	dmg, crit := rollDamage(float64(ctx.Actor.Stats.Str)*0.5, BaseCritChance(ctx.Actor.Stats.Luck), ctx.Rand)
	stun := ctx.Rand.Float64() < heavyStrikeStunChance

	return SkillOutcome{
		Result: SkillResult{Damage: dmg, IsCrit: crit, IsStun: stun},
	}
}

func arbitrage(ctx SkillContext) SkillOutcome {
	per := float64(ctx.Actor.Stats.Str) * 0.25
	first, firstCrit := rollDamage(per, BaseCritChance(ctx.Actor.Stats.Luck), ctx.Rand)
	second, secondCrit := rollDamage(per, arbitrageSecondCrit, ctx.Rand)

	return SkillOutcome{
		Result: SkillResult{Damage: first + second, IsCrit: firstCrit || secondCrit},
	}
}

func nftSnipe(ctx SkillContext) SkillOutcome {
	chance := snipeCritUnfavored
	if ctx.Actor.Stats.Luck > ctx.Target.Stats.Luck {
		chance = snipeCritFavored
	}
	base := float64(ctx.Actor.Stats.Luck)*0.4 + float64(ctx.Actor.Stats.Str)*0.1
	dmg, crit := rollDamage(base, chance, ctx.Rand)

	return SkillOutcome{
		Result: SkillResult{Damage: dmg, IsCrit: crit},
	}
}

func hostileTakeover(ctx SkillContext) SkillOutcome {
	dmg, crit := rollDamage(float64(ctx.Actor.Stats.Str)*0.25, BaseCritChance(ctx.Actor.Stats.Luck), ctx.Rand)

	return SkillOutcome{
		Result: SkillResult{Damage: dmg, IsCrit: crit},
		Actor:  StateDelta{DamageDealtMultiplier: 1.15},
		Target: StateDelta{DamageDealtMultiplier: 0.75},
	}
}

func divineShield(ctx SkillContext) SkillOutcome {
	heal := int32(math.Floor(float64(ctx.Actor.Stats.Int) * 0.3))
	if missing := ctx.Actor.MissingHP(); heal > missing {
		heal = missing
	}
	if heal < 0 {
		heal = 0
	}

	return SkillOutcome{
		Result: SkillResult{Healed: heal},
		Actor:  StateDelta{Heal: heal, DamageReceivedMultiplier: 0.8},
	}
}

// ancientSpell's defense halving is applied by the engine via HalvesTargetDefense
func ancientSpell(ctx SkillContext) SkillOutcome {
	dmg, crit := rollDamage(float64(ctx.Actor.Stats.Int)*0.45, BaseCritChance(ctx.Actor.Stats.Luck), ctx.Rand)

	return SkillOutcome{
		Result: SkillResult{Damage: dmg, IsCrit: crit},
	}
}

func counterStance(_ SkillContext) SkillOutcome {
	return SkillOutcome{
		Actor: StateDelta{SetReflecting: true},
	}
}

func portalStrike(ctx SkillContext) SkillOutcome {
	base := float64(ctx.Actor.Stats.Str+ctx.Actor.Stats.Int) * 0.2
	dmg, crit := rollDamage(base, BaseCritChance(ctx.Actor.Stats.Luck), ctx.Rand)

	drain := int32(portalStrikeDrain)
	if ctx.Target.CurrentMP < drain {
		drain = ctx.Target.CurrentMP
	}
	if drain < 0 {
		drain = 0
	}

	return SkillOutcome{
		Result: SkillResult{Damage: dmg, IsCrit: crit, MPDrained: drain},
		Target: StateDelta{MPLoss: drain},
	}
}
