package rules

import (
	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

var passives = map[entities.ClassID]Passive{
	entities.ClassWarrior: {
		Name:          "Iron Will",
		MaxHPBonusPct: 0.10,
	},
	entities.ClassRogue: {
		Name:       "Evasion",
		DodgeBonus: 0.10,
	},
	entities.ClassHunter: {
		Name:      "Keen Eye",
		CritBonus: 0.15,
	},
	entities.ClassMerchant: {
		Name:               "Compound Interest",
		MPRecoveryInterval: 4,
		MPRecoveryPct:      0.15,
	},
	entities.ClassPriest: {
		Name:               "Blessing",
		BattleStartHealPct: 0.05,
		TurnEndHealPct:     0.015,
	},
	entities.ClassElderWizard: {
		Name:            "Mana Well",
		MPCostReduction: 0.15,
	},
	entities.ClassGuardian: {
		Name:               "Unbreakable",
		DefenseBonus:       0.20,
		AntiBurstThreshold: 0.20,
	},
	entities.ClassSummoner: {
		Name:              "Summon Familiar",
		BonusDamageIntPct: 0.05,
	},
}

// PassiveFor returns the passive of a class. Unknown classes get an empty passive.
func PassiveFor(class entities.ClassID) Passive {
	return passives[class]
}
