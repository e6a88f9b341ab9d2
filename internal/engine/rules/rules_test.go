package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wallet-arena/internal/engine/rules"
	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

// scriptedRand returns the given draws in order, then 0.99
type scriptedRand struct {
	draws []float64
	calls int
}

func (r *scriptedRand) Float64() float64 {
	r.calls++
	if len(r.draws) == 0 {
		return 0.99
	}
	v := r.draws[0]
	r.draws = r.draws[1:]
	return v
}

type RulesTestSuite struct {
	suite.Suite
	actor  rules.Combatant
	target rules.Combatant
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func (s *RulesTestSuite) SetupTest() {
	s.actor = rules.Combatant{
		Stats:     entities.Stats{Level: 10, HP: 400, MP: 200, Str: 200, Int: 100, Dex: 250, Luck: 120},
		CurrentHP: 300,
		MaxHP:     400,
		CurrentMP: 200,
		MaxMP:     200,
	}
	s.target = rules.Combatant{
		Stats:     entities.Stats{Level: 10, HP: 350, MP: 180, Str: 180, Int: 80, Dex: 320, Luck: 140},
		CurrentHP: 350,
		MaxHP:     350,
		CurrentMP: 5,
		MaxMP:     180,
	}
}

func (s *RulesTestSuite) execute(class entities.ClassID, draws ...float64) (rules.SkillOutcome, *scriptedRand) {
	skill, ok := rules.SkillFor(class)
	s.Require().True(ok)
	r := &scriptedRand{draws: draws}
	s.actor.Class = class
	return skill.Execute(rules.SkillContext{Actor: s.actor, Target: s.target, Rand: r}), r
}

func (s *RulesTestSuite) TestEveryClassHasSkillAndPassive() {
	for _, class := range entities.AllClasses() {
		skill, ok := rules.SkillFor(class)
		s.True(ok, class)
		s.NotEmpty(skill.Name)
		s.NotNil(skill.Execute)
		s.NotEmpty(rules.PassiveFor(class).Name)
	}
}

func (s *RulesTestSuite) TestSkillTable() {
	testCases := []struct {
		class    entities.ClassID
		name     string
		cost     int32
		cooldown int32
		generic  bool
	}{
		{entities.ClassWarrior, "Heavy Strike", 15, 2, true},
		{entities.ClassRogue, "Arbitrage", 18, 3, false},
		{entities.ClassHunter, "NFT Snipe", 18, 2, false},
		{entities.ClassMerchant, "Hostile Takeover", 20, 3, true},
		{entities.ClassPriest, "Divine Shield", 18, 3, true},
		{entities.ClassElderWizard, "Ancient Spell", 35, 3, true},
		{entities.ClassGuardian, "Counter Stance", 15, 2, true},
		{entities.ClassSummoner, "Portal Strike", 22, 3, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			skill, ok := rules.SkillFor(tc.class)
			s.Require().True(ok)
			s.Equal(tc.name, skill.Name)
			s.Equal(tc.cost, skill.MPCost)
			s.Equal(tc.cooldown, skill.Cooldown)
			s.Equal(tc.generic, skill.UsesGenericCritModel)
			s.Equal(tc.class == entities.ClassElderWizard, skill.HalvesTargetDefense)
		})
	}
}

func (s *RulesTestSuite) TestEffectiveMPCost() {
	s.Equal(int32(30), rules.EffectiveMPCost(entities.ClassElderWizard))
	s.Equal(int32(15), rules.EffectiveMPCost(entities.ClassWarrior))
	s.Equal(int32(0), rules.EffectiveMPCost(entities.ClassID("bard")))
}

func (s *RulesTestSuite) TestBaseCritChance() {
	s.InDelta(0.08, rules.BaseCritChance(0), 1e-9)
	s.InDelta(0.116, rules.BaseCritChance(120), 1e-9)
}

func (s *RulesTestSuite) TestHeavyStrike() {
	s.Run("no crit no stun", func() {
		out, _ := s.execute(entities.ClassWarrior, 0.5, 0.5)
		s.Equal(int32(100), out.Result.Damage)
		s.False(out.Result.IsCrit)
		s.False(out.Result.IsStun)
	})

	s.Run("crit and stun", func() {
		out, _ := s.execute(entities.ClassWarrior, 0.01, 0.10)
		s.Equal(int32(180), out.Result.Damage)
		s.True(out.Result.IsCrit)
		s.True(out.Result.IsStun)
	})
}

func (s *RulesTestSuite) TestArbitrage() {
	s.Run("second hit uses fixed crit chance", func() {
		// first hit misses the 0.116 crit, second lands under 0.35
		out, r := s.execute(entities.ClassRogue, 0.2, 0.3)
		s.Equal(2, r.calls)
		s.Equal(int32(50+90), out.Result.Damage)
		s.True(out.Result.IsCrit)
	})

	s.Run("no crits", func() {
		out, _ := s.execute(entities.ClassRogue, 0.9, 0.9)
		s.Equal(int32(100), out.Result.Damage)
		s.False(out.Result.IsCrit)
	})
}

func (s *RulesTestSuite) TestNFTSnipe() {
	// actor luck 120 < target luck 140, so crit chance is 25%
	out, _ := s.execute(entities.ClassHunter, 0.3)
	s.False(out.Result.IsCrit)
	s.Equal(int32(120*0.4+200*0.1), out.Result.Damage)

	s.actor.Stats.Luck = 200
	out, _ = s.execute(entities.ClassHunter, 0.7)
	s.True(out.Result.IsCrit)
}

func (s *RulesTestSuite) TestHostileTakeover() {
	out, _ := s.execute(entities.ClassMerchant, 0.9)
	s.Equal(int32(50), out.Result.Damage)
	s.Equal(1.15, out.Actor.DealtFactor())
	s.Equal(0.75, out.Target.DealtFactor())
	s.Equal(1.0, out.Target.ReceivedFactor())
}

func (s *RulesTestSuite) TestDivineShield() {
	s.Run("heal below missing hp", func() {
		out, r := s.execute(entities.ClassPriest)
		s.Equal(0, r.calls)
		s.Equal(int32(0), out.Result.Damage)
		s.Equal(int32(30), out.Result.Healed)
		s.Equal(int32(30), out.Actor.Heal)
		s.Equal(0.8, out.Actor.ReceivedFactor())
	})

	s.Run("heal capped at missing hp", func() {
		s.actor.CurrentHP = 390
		out, _ := s.execute(entities.ClassPriest)
		s.Equal(int32(10), out.Result.Healed)
	})

	s.Run("full hp heals nothing", func() {
		s.actor.CurrentHP = 400
		out, _ := s.execute(entities.ClassPriest)
		s.Equal(int32(0), out.Result.Healed)
	})
}

func (s *RulesTestSuite) TestAncientSpell() {
	out, _ := s.execute(entities.ClassElderWizard, 0.9)
	s.Equal(int32(45), out.Result.Damage)
}

func (s *RulesTestSuite) TestCounterStance() {
	out, r := s.execute(entities.ClassGuardian)
	s.Equal(0, r.calls)
	s.Equal(int32(0), out.Result.Damage)
	s.True(out.Actor.SetReflecting)
}

func (s *RulesTestSuite) TestPortalStrike() {
	s.Run("drain clamped to target mp", func() {
		out, _ := s.execute(entities.ClassSummoner, 0.9)
		s.Equal(int32(60), out.Result.Damage)
		s.Equal(int32(5), out.Result.MPDrained)
		s.Equal(int32(5), out.Target.MPLoss)
	})

	s.Run("full drain", func() {
		s.target.CurrentMP = 100
		out, _ := s.execute(entities.ClassSummoner, 0.9)
		s.Equal(int32(10), out.Result.MPDrained)
	})
}

func (s *RulesTestSuite) TestPassiveTable() {
	s.Equal(0.10, rules.PassiveFor(entities.ClassWarrior).MaxHPBonusPct)
	s.Equal(0.10, rules.PassiveFor(entities.ClassRogue).DodgeBonus)
	s.Equal(0.15, rules.PassiveFor(entities.ClassHunter).CritBonus)
	s.Equal(int32(4), rules.PassiveFor(entities.ClassMerchant).MPRecoveryInterval)
	s.Equal(0.015, rules.PassiveFor(entities.ClassPriest).TurnEndHealPct)
	s.Equal(0.15, rules.PassiveFor(entities.ClassElderWizard).MPCostReduction)
	s.Equal(0.20, rules.PassiveFor(entities.ClassGuardian).AntiBurstThreshold)
	s.Equal(0.05, rules.PassiveFor(entities.ClassSummoner).BonusDamageIntPct)
	s.Equal(rules.Passive{}, rules.PassiveFor(entities.ClassID("bard")))
}
