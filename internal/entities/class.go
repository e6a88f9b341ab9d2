package entities

// ClassID identifies one of the eight character classes
type ClassID string

// Class constants
const (
	ClassWarrior     ClassID = "warrior"
	ClassRogue       ClassID = "rogue"
	ClassHunter      ClassID = "hunter"
	ClassMerchant    ClassID = "merchant"
	ClassPriest      ClassID = "priest"
	ClassElderWizard ClassID = "elder_wizard"
	ClassGuardian    ClassID = "guardian"
	ClassSummoner    ClassID = "summoner"
)

// AllClasses returns every class in a stable order
func AllClasses() []ClassID {
	return []ClassID{
		ClassWarrior,
		ClassRogue,
		ClassHunter,
		ClassMerchant,
		ClassPriest,
		ClassElderWizard,
		ClassGuardian,
		ClassSummoner,
	}
}

// IsValid reports whether the class is one of the known classes
func (c ClassID) IsValid() bool {
	for _, known := range AllClasses() {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the class identifier
func (c ClassID) String() string {
	return string(c)
}

// DisplayName returns the human readable class name
func (c ClassID) DisplayName() string {
	switch c {
	case ClassWarrior:
		return "Warrior"
	case ClassRogue:
		return "Rogue"
	case ClassHunter:
		return "Hunter"
	case ClassMerchant:
		return "Merchant"
	case ClassPriest:
		return "Priest"
	case ClassElderWizard:
		return "Elder Wizard"
	case ClassGuardian:
		return "Guardian"
	case ClassSummoner:
		return "Summoner"
	default:
		return string(c)
	}
}
