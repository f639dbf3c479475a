package scene

import (
	"fmt"

	"anthrobot/internal/taxonomy"
)

// WoundFrame is one scripted frame of the wound-healing sequence.
type WoundFrame struct {
	Frame            int     `json:"frame"`
	Timepoint        string  `json:"timepoint"`
	ElapsedMinutes   float64 `json:"elapsed_minutes"`
	Description      string  `json:"description"`
	GapWidth         string  `json:"gap_width"`
	Positions        string  `json:"anthrobot_positions"`
	BridgeCompletion float64 `json:"bridge_completion"`
	VisualNotes      string  `json:"visual_notes"`
	HealingEvidence  string  `json:"healing_evidence,omitempty"`
	Bots             []Bot   `json:"anthrobots"`
}

// WoundHealing is the fixed four-frame bridge-formation scenario.
type WoundHealing struct {
	ScenarioName      string            `json:"scenario_name"`
	ScientificContext map[string]string `json:"scientific_context"`
	Frames            []WoundFrame      `json:"visual_sequence"`
	ImagingChannels   map[string]string `json:"imaging_specifications"`
	VisualDrama       map[string]string `json:"visual_drama"`
	SynthesisGuidance string            `json:"synthesis_guidance"`
}

// woundScript is the fixed frame script. Transitions are authored structural
// deltas (scatter, migration, bridge, regrowth), not simulation output.
// BridgeCompletion increases strictly across the sequence.
var woundScript = []struct {
	timepoint        string
	elapsedMinutes   float64
	description      string
	gapWidth         string
	positions        string
	bridgeCompletion float64
	visualNotes      string
	healingEvidence  string
}{
	{
		timepoint:        "T=0 (initial state)",
		elapsedMinutes:   0,
		description:      "Scratch tear in the red neural cell layer",
		gapWidth:         "100-300 micrometers",
		positions:        "Scattered around the wound periphery",
		bridgeCompletion: 0.0,
		visualNotes:      "Bots randomly oriented, not yet wound-seeking",
	},
	{
		timepoint:        "T=30 minutes",
		elapsedMinutes:   30,
		description:      "Anthrobots migrating toward the wound",
		gapWidth:         "100-300 micrometers (unchanged)",
		positions:        "Moving into the gap, beginning to align",
		bridgeCompletion: 0.25,
		visualNotes:      "Yellow coronas visible, trajectory traces converging",
	},
	{
		timepoint:        "T=2 hours",
		elapsedMinutes:   120,
		description:      "Bridge formation complete",
		gapWidth:         "100-300 micrometers (spanned)",
		positions:        "Linear chain spanning the gap end to end",
		bridgeCompletion: 0.9,
		visualNotes:      "Bots in contact, forming a continuous living bridge",
		healingEvidence:  "First green neural regrowth crossing the bridge",
	},
	{
		timepoint:        "T=24-48 hours",
		elapsedMinutes:   1440,
		description:      "Tissue reconnection across the former gap",
		gapWidth:         "Partially closed",
		positions:        "Bridge intact, outer bots beginning to disperse",
		bridgeCompletion: 1.0,
		visualNotes:      "Functional neural repair achieved",
		healingEvidence:  "Complete green reconnection across the former gap",
	},
}

// woundCast is the fixed five-bot cast used in every frame: mostly movers
// (circlers and swimmers seek the wound), one wiggler as a bystander.
var woundCast = []struct {
	morphotype taxonomy.MorphotypeID
	size       float64
}{
	{taxonomy.Morphotype2, 120},
	{taxonomy.Morphotype3, 180},
	{taxonomy.Morphotype2, 90},
	{taxonomy.Morphotype3, 250},
	{taxonomy.Morphotype1, 150},
}

// WoundHealingScenario returns the hand-authored four-frame bridge-formation
// scene: scatter, migration, bridge, regrowth.
func (c *Composer) WoundHealingScenario() (WoundHealing, error) {
	w := WoundHealing{
		ScenarioName: "Wound Healing Bridge Formation",
		ScientificContext: map[string]string{
			"discovery":      "Anthrobots spontaneously form bridges across neural damage",
			"mechanism":      "Unknown - possibly bioelectric sensing or chemotaxis",
			"healing_effect": "Neural regrowth occurs across the anthrobot bridge",
			"significance":   "Demonstrates therapeutic potential from a patient's own cells",
		},
		ImagingChannels: map[string]string{
			"neural_layer_stain":  "Red (tight junctions or cell tracker)",
			"anthrobot_cilia":     "Yellow (acetylated tubulin)",
			"neural_regrowth":     "Green (growth marker)",
			"background":          "Black (fluorescence standard)",
			"time_lapse_interval": "5-15 minutes per frame",
		},
		VisualDrama: map[string]string{
			"key_moment":          "Frame 3 - the completed bridge spans the gap",
			"aesthetic_principle": "Ant-bridge structure, living scaffolding",
			"emotional_impact":    "Adult cells collaborating to heal damage",
			"scale_wonder":        "Microscopic repair with macro-scale implications",
		},
		SynthesisGuidance: "Emphasize the gap, the migration, the bridge, and the green regrowth crossing it. " +
			"Visual metaphor: a cellular emergency response team building a living bridge.",
	}

	for i, f := range woundScript {
		frame := WoundFrame{
			Frame:            i + 1,
			Timepoint:        f.timepoint,
			ElapsedMinutes:   f.elapsedMinutes,
			Description:      f.description,
			GapWidth:         f.gapWidth,
			Positions:        f.positions,
			BridgeCompletion: f.bridgeCompletion,
			VisualNotes:      f.visualNotes,
			HealingEvidence:  f.healingEvidence,
		}
		for j, cast := range woundCast {
			bundle, err := c.synth.Synthesize(cast.morphotype, cast.size, taxonomy.StageMature, taxonomy.StyleScientific)
			if err != nil {
				return WoundHealing{}, err
			}
			frame.Bots = append(frame.Bots, Bot{
				BotID:           j + 1,
				EntityID:        entityID(fmt.Sprintf("wound_healing/frame/%d/bot/%d", i+1, j+1)),
				Morphotype:      cast.morphotype,
				SizeMicrometers: cast.size,
				Bundle:          bundle,
			})
		}
		w.Frames = append(w.Frames, frame)
	}
	return w, nil
}
