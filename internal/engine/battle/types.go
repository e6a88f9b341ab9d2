package battle

import (
	"github.com/KirkDiggler/wallet-arena/internal/engine/matchup"
	"github.com/KirkDiggler/wallet-arena/internal/entities"
)

// ActionType describes what a fighter did on its turn
type ActionType string

// Action types
const (
	ActionSkill       ActionType = "skill"
	ActionBasicAttack ActionType = "basic_attack"
	ActionStunned     ActionType = "stunned"
)

// EndReason describes why the battle stopped
type EndReason string

// End reasons
const (
	EndReasonKO       EndReason = "ko"
	EndReasonMaxTurns EndReason = "max_turns"
)

// Action is one emitted turn record. Records are never modified once emitted.
type Action struct {
	Turn          int        `json:"turn"`
	ActorIndex    int        `json:"actor_index"`
	Type          ActionType `json:"action_type"`
	SkillName     string     `json:"skill_name,omitempty"`
	Damage        int32      `json:"damage"`
	Healed        int32      `json:"healed,omitempty"`
	Reflected     int32      `json:"reflected,omitempty"`
	MPDrained     int32      `json:"mp_drained,omitempty"`
	IsCrit        bool       `json:"is_crit"`
	IsStun        bool       `json:"is_stun"`
	IsDodge       bool       `json:"is_dodge"`
	ActorHPAfter  int32      `json:"actor_hp_after"`
	TargetHPAfter int32      `json:"target_hp_after"`
	Narrative     string     `json:"narrative"`
}

// Result is the complete, reproducible outcome of a battle
type Result struct {
	Fighters        [2]entities.Snapshot `json:"fighters"`
	Winner          int                  `json:"winner"`
	Actions         []Action             `json:"actions"`
	TotalTurns      int                  `json:"total_turns"`
	WinnerHP        int32                `json:"winner_hp"`
	WinnerHPPercent int                  `json:"winner_hp_percent"`
	EndReason       EndReason            `json:"end_reason"`
	Matchup         matchup.Matchup      `json:"matchup"`
	Nonce           string               `json:"nonce"`
	Seed            string               `json:"seed"`
}

// SameOutcome reports whether two results describe the same battle.
// Narratives are ignored since they depend on the formatter in use.
func (r *Result) SameOutcome(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Seed != other.Seed || r.Winner != other.Winner || r.TotalTurns != other.TotalTurns ||
		r.WinnerHP != other.WinnerHP || r.EndReason != other.EndReason || r.Matchup != other.Matchup ||
		len(r.Actions) != len(other.Actions) {
		return false
	}
	for i := range r.Actions {
		a, b := r.Actions[i], other.Actions[i]
		a.Narrative, b.Narrative = "", ""
		if a != b {
			return false
		}
	}
	return true
}

// NarrativeInput carries the structured fields a narrator may describe
type NarrativeInput struct {
	Type       ActionType
	SkillName  string
	Damage     int32
	Healed     int32
	Reflected  int32
	MPDrained  int32
	IsCrit     bool
	IsStun     bool
	IsDodge    bool
	ActorName  string
	TargetName string
	ActorClass entities.ClassID
}

// Narrator turns an action into a human readable sentence
type Narrator interface {
	Narrate(input *NarrativeInput) string
}

// NarratorFunc adapts a function to Narrator
type NarratorFunc func(input *NarrativeInput) string

// Narrate calls f
func (f NarratorFunc) Narrate(input *NarrativeInput) string {
	return f(input)
}

// SimulateInput is the input to Simulate
type SimulateInput struct {
	Fighters [2]entities.Snapshot
	Nonce    string
	// Narrator is optional; without one actions carry empty narratives
	Narrator Narrator
}
