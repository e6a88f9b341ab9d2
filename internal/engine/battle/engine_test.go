package battle_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wallet-arena/internal/engine/battle"
	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

type EngineTestSuite struct {
	suite.Suite
	warrior entities.Snapshot
	rogue   entities.Snapshot
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.warrior = entities.Snapshot{
		Address: "0xAAA1",
		Name:    "Ironhide",
		Class:   entities.ClassWarrior,
		Stats:   entities.Stats{Level: 10, HP: 400, MP: 200, Str: 200, Int: 50, Dex: 250, Luck: 120, Power: 1000},
	}
	s.rogue = entities.Snapshot{
		Address: "0xbbb2",
		Class:   entities.ClassRogue,
		Stats:   entities.Stats{Level: 10, HP: 350, MP: 180, Str: 180, Int: 40, Dex: 320, Luck: 140, Power: 900},
	}
}

func (s *EngineTestSuite) simulate(a, b entities.Snapshot, nonce string) *battle.Result {
	return battle.Simulate(&battle.SimulateInput{
		Fighters: [2]entities.Snapshot{a, b},
		Nonce:    nonce,
	})
}

func (s *EngineTestSuite) TestDeterministic() {
	first := s.simulate(s.warrior, s.rogue, "n-1")
	for i := 0; i < 5; i++ {
		again := s.simulate(s.warrior, s.rogue, "n-1")
		s.True(first.SameOutcome(again))
		s.Equal(first, again)
	}
}

func (s *EngineTestSuite) TestAddressCaseDoesNotMatter() {
	lower, upper := s.warrior, s.rogue
	lower.Address = strings.ToLower(lower.Address)
	upper.Address = strings.ToUpper(upper.Address)

	a := s.simulate(s.warrior, s.rogue, "case")
	b := s.simulate(lower, upper, "case")

	s.Equal(a.Seed, b.Seed)
	s.True(a.SameOutcome(b))
}

func (s *EngineTestSuite) TestNonceChangesSeed() {
	a := s.simulate(s.warrior, s.rogue, "1")
	b := s.simulate(s.warrior, s.rogue, "2")
	s.NotEqual(a.Seed, b.Seed)
	s.Len(a.Seed, 8)
}

func (s *EngineTestSuite) TestHigherInitiativeActsFirst() {
	result := s.simulate(s.warrior, s.rogue, "first")

	s.Require().NotEmpty(result.Actions)
	s.Equal(1, result.Actions[0].ActorIndex)
	s.Equal(1, result.Actions[0].Turn)
}

func (s *EngineTestSuite) TestWarriorVersusRogueExample() {
	first := s.simulate(s.warrior, s.rogue, "test-nonce-1")

	for i := 0; i < 3; i++ {
		again := s.simulate(s.warrior, s.rogue, "test-nonce-1")
		s.Equal(first, again)
	}

	s.Require().NotEmpty(first.Actions)
	s.Equal(1, first.Actions[0].Turn)
	s.Equal(1, first.Actions[0].ActorIndex, "rogue has the higher initiative")
	s.Equal("test-nonce-1", first.Nonce)
}

func (s *EngineTestSuite) TestResultShape() {
	result := s.simulate(s.warrior, s.rogue, "shape")

	s.Equal("shape", result.Nonce)
	s.Equal([2]entities.Snapshot{s.warrior, s.rogue}, result.Fighters)
	s.Equal(len(result.Actions), result.TotalTurns)
	s.LessOrEqual(result.TotalTurns, battle.MaxActions)
	s.Contains([]int{0, 1}, result.Winner)
	s.GreaterOrEqual(result.WinnerHPPercent, 0)
	s.LessOrEqual(result.WinnerHPPercent, 100)

	for i, a := range result.Actions {
		s.Equal(i+1, a.Turn)
		s.Empty(a.Narrative)
	}
}

func (s *EngineTestSuite) TestInvariantsAcrossClassPairs() {
	for _, c0 := range entities.AllClasses() {
		for _, c1 := range entities.AllClasses() {
			a, b := s.warrior, s.rogue
			a.Class, b.Class = c0, c1

			for n := 0; n < 5; n++ {
				nonce := fmt.Sprintf("%s-%s-%d", c0, c1, n)
				result := s.simulate(a, b, nonce)
				maxHP := [2]int32{battle.NewFighter(a).MaxHP, battle.NewFighter(b).MaxHP}

				s.LessOrEqual(len(result.Actions), battle.MaxActions, nonce)
				for _, act := range result.Actions {
					actor, target := act.ActorIndex, 1-act.ActorIndex
					s.GreaterOrEqual(act.ActorHPAfter, int32(0), nonce)
					s.GreaterOrEqual(act.TargetHPAfter, int32(0), nonce)
					s.LessOrEqual(act.ActorHPAfter, maxHP[actor], nonce)
					s.LessOrEqual(act.TargetHPAfter, maxHP[target], nonce)
					if act.IsDodge {
						s.Equal(int32(0), act.Damage, nonce)
						s.False(act.IsCrit, nonce)
					}
					if act.Type == battle.ActionStunned {
						s.Equal(int32(0), act.Damage, nonce)
					}
				}

				if result.EndReason == battle.EndReasonMaxTurns {
					s.Len(result.Actions, battle.MaxActions, nonce)
				}
				if result.EndReason == battle.EndReasonKO {
					last := result.Actions[len(result.Actions)-1]
					s.True(last.ActorHPAfter == 0 || last.TargetHPAfter == 0, nonce)
				}
			}
		}
	}
}

func (s *EngineTestSuite) TestEitherSideCanWin() {
	a, b := s.warrior, s.warrior
	b.Address = "0xccc3"

	wins := [2]int{}
	for n := 0; n < 200; n++ {
		wins[s.simulate(a, b, fmt.Sprintf("mirror-%d", n)).Winner]++
	}

	s.Positive(wins[0])
	s.Positive(wins[1])
}

func (s *EngineTestSuite) TestSkillGatedByMP() {
	wizard := entities.Snapshot{
		Address: "0x0001",
		Class:   entities.ClassElderWizard,
		Stats:   entities.Stats{Level: 10, HP: 300, MP: 29, Str: 20, Int: 250, Dex: 50, Luck: 50},
	}
	opponent := s.warrior
	opponent.Class = entities.ClassGuardian

	poor := s.simulate(wizard, opponent, "mp")
	for _, a := range poor.Actions {
		if a.ActorIndex == 0 {
			s.NotEqual(battle.ActionSkill, a.Type)
		}
	}

	wizard.Stats.MP = 30
	rich := s.simulate(wizard, opponent, "mp")
	for _, a := range rich.Actions {
		if a.ActorIndex == 0 {
			s.Equal(battle.ActionSkill, a.Type)
			s.Equal("Ancient Spell", a.SkillName)
			break
		}
	}
}

func (s *EngineTestSuite) TestNarratorCalledPerAction() {
	calls := 0
	var seen []battle.ActionType
	narrator := battle.NarratorFunc(func(in *battle.NarrativeInput) string {
		calls++
		seen = append(seen, in.Type)
		return fmt.Sprintf("%s acts", in.ActorName)
	})

	result := battle.Simulate(&battle.SimulateInput{
		Fighters: [2]entities.Snapshot{s.warrior, s.rogue},
		Nonce:    "story",
		Narrator: narrator,
	})

	s.Equal(len(result.Actions), calls)
	for i, a := range result.Actions {
		s.Equal(seen[i], a.Type)
		s.NotEmpty(a.Narrative)
	}

	plain := s.simulate(s.warrior, s.rogue, "story")
	s.True(plain.SameOutcome(result))
}

func (s *EngineTestSuite) TestStalemateGoesToMaxTurns() {
	a := entities.Snapshot{
		Address: "0x02",
		Class:   entities.ClassPriest,
		Stats:   entities.Stats{Level: 1, HP: 100, Str: 1, Power: 10},
	}
	b := a
	b.Address = "0x01"
	b.Stats.Power = 20

	result := s.simulate(a, b, "stall")

	s.Equal(battle.EndReasonMaxTurns, result.EndReason)
	s.Len(result.Actions, battle.MaxActions)
	s.Equal(1, result.Winner)
	s.Equal(int32(100), result.WinnerHP)
	s.Equal(100, result.WinnerHPPercent)
	// lower address acts first when initiative ties
	s.Equal(1, result.Actions[0].ActorIndex)
	for _, act := range result.Actions {
		s.Equal(battle.ActionBasicAttack, act.Type)
		s.Equal(int32(0), act.Damage)
	}
}
