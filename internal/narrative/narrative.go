// Package narrative renders battle actions as short English sentences.
package narrative

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/wallet-arena/internal/engine/battle"
	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

var _ battle.Narrator = (*Formatter)(nil)

// attackVerbs flavours basic attacks by class
var attackVerbs = map[entities.ClassID]string{
	entities.ClassWarrior:     "cleaves at",
	entities.ClassRogue:       "slips a dagger into",
	entities.ClassHunter:      "looses an arrow at",
	entities.ClassMerchant:    "swings a ledger at",
	entities.ClassPriest:      "smites",
	entities.ClassElderWizard: "hurls a bolt at",
	entities.ClassGuardian:    "shield-bashes",
	entities.ClassSummoner:    "sends a familiar at",
}

const defaultVerb = "strikes"

// Formatter is the default narrator
type Formatter struct {
	verbs map[entities.ClassID]string
}

// New returns a formatter using the built-in class verbs
func New() *Formatter {
	return &Formatter{verbs: attackVerbs}
}

// Narrate describes a single action
func (f *Formatter) Narrate(in *battle.NarrativeInput) string {
	if in == nil {
		return ""
	}

	switch in.Type {
	case battle.ActionStunned:
		return fmt.Sprintf("%s is stunned and cannot act.", in.ActorName)
	case battle.ActionSkill:
		return f.skill(in)
	default:
		return f.attack(in)
	}
}

func (f *Formatter) attack(in *battle.NarrativeInput) string {
	verb, ok := f.verbs[in.ActorClass]
	if !ok {
		verb = defaultVerb
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", in.ActorName, verb, in.TargetName)
	f.hit(&b, in)
	return b.String()
}

func (f *Formatter) skill(in *battle.NarrativeInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s uses %s", in.ActorName, in.SkillName)

	if in.Damage == 0 && !in.IsDodge {
		// self-targeted skills
		switch {
		case in.Healed > 0:
			fmt.Fprintf(&b, ", restoring %d HP.", in.Healed)
		case in.MPDrained > 0:
			fmt.Fprintf(&b, ", draining %d MP from %s.", in.MPDrained, in.TargetName)
		default:
			b.WriteString(".")
		}
		return b.String()
	}

	fmt.Fprintf(&b, " on %s", in.TargetName)
	f.hit(&b, in)
	if in.MPDrained > 0 {
		fmt.Fprintf(&b, " %d MP drained.", in.MPDrained)
	}
	if in.Healed > 0 {
		fmt.Fprintf(&b, " %s recovers %d HP.", in.ActorName, in.Healed)
	}
	return b.String()
}

func (f *Formatter) hit(b *strings.Builder, in *battle.NarrativeInput) {
	if in.IsDodge {
		fmt.Fprintf(b, ", but %s dodges!", in.TargetName)
		return
	}

	if in.IsCrit {
		b.WriteString(" with a critical hit")
	}
	fmt.Fprintf(b, " for %d damage", in.Damage)
	if in.IsStun {
		fmt.Fprintf(b, ", stunning %s", in.TargetName)
	}
	b.WriteString(".")

	if in.Reflected > 0 {
		fmt.Fprintf(b, " %d damage is reflected back to %s.", in.Reflected, in.ActorName)
	}
}
