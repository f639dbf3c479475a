// Package scene composes multi-entity and temporal outputs from single-bot
// parameter bundles: life-cycle sequences, swarms, and the scripted
// wound-healing scenario.
//
// Everything here is deterministic. Swarm size diversity comes from a
// declared arithmetic policy, not a random source, and entity IDs are
// name-based UUIDs, so identical inputs compose identical scenes.
package scene

import (
	"github.com/google/uuid"

	"anthrobot/internal/synth"
	"anthrobot/internal/taxonomy"
)

// Composer builds scenes over one synthesizer.
type Composer struct {
	store *taxonomy.Store
	synth *synth.Synthesizer
}

// NewComposer returns a composer over the given synthesizer.
func NewComposer(s *synth.Synthesizer) *Composer {
	return &Composer{store: s.Store(), synth: s}
}

// entityID derives a reproducible per-entity UUID from the scene path.
func entityID(path string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("anthrobot://"+path)).String()
}

// Bot is one synthesized entity inside a scene.
type Bot struct {
	BotID           int                   `json:"bot_id"`
	EntityID        string                `json:"entity_id"`
	Morphotype      taxonomy.MorphotypeID `json:"morphotype"`
	SizeMicrometers float64               `json:"size_micrometers"`
	Bundle          synth.Bundle          `json:"bundle"`
}
