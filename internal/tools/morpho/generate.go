package morpho

import (
	"context"

	"anthrobot/internal/taxonomy"
	"anthrobot/internal/tools"
)

// GenerateVisualization exposes single-bot bundle synthesis.
func (s *Set) GenerateVisualization() *tools.Tool {
	minSize, maxSize := taxonomy.SizeMin, taxonomy.SizeMax
	return &tools.Tool{
		Name:        "generate_anthrobot_visualization",
		Description: "Generate the complete visual parameter bundle for one anthrobot",
		Category:    tools.CategorySynthesis,
		Schema: tools.Schema{
			Required: []string{"morphotype"},
			Properties: map[string]tools.Property{
				"morphotype": {
					Type:        "string",
					Description: "Morphotype identifier",
					Enum:        []any{"morphotype_1", "morphotype_2", "morphotype_3"},
				},
				"size_micrometers": {
					Type:        "number",
					Description: "Size in micrometers (default 150)",
					Default:     150,
					Minimum:     &minSize,
					Maximum:     &maxSize,
				},
				"life_stage": {
					Type:        "string",
					Description: "Life-cycle stage (default mature)",
					Default:     "mature",
					Enum:        []any{"progenitor", "early_spheroid", "eversion", "mature", "senescent"},
				},
				"imaging_style": {
					Type:        "string",
					Description: "Rendering aesthetics (default scientific)",
					Default:     "scientific",
					Enum:        []any{"scientific", "artistic", "depth_map"},
				},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			bundle, err := s.synth.Synthesize(
				taxonomy.MorphotypeID(stringArg(args, "morphotype", "")),
				floatArg(args, "size_micrometers", 150),
				taxonomy.StageID(stringArg(args, "life_stage", "mature")),
				taxonomy.StyleID(stringArg(args, "imaging_style", "scientific")),
			)
			if err != nil {
				return "", err
			}
			return marshal(bundle)
		},
	}
}

// GenerateLifeCycleSequence exposes developmental time-series composition.
func (s *Set) GenerateLifeCycleSequence() *tools.Tool {
	minSize, maxSize := taxonomy.SizeMin, taxonomy.SizeMax
	return &tools.Tool{
		Name:        "generate_life_cycle_sequence",
		Description: "Generate a temporal progression through anthrobot development",
		Category:    tools.CategoryScene,
		Schema: tools.Schema{
			Required: []string{"morphotype"},
			Properties: map[string]tools.Property{
				"morphotype": {
					Type:        "string",
					Description: "Morphotype to follow through development",
					Enum:        []any{"morphotype_1", "morphotype_2", "morphotype_3"},
				},
				"start_stage": {
					Type:        "string",
					Description: "First stage of the range (default progenitor)",
					Default:     "progenitor",
					Enum:        []any{"progenitor", "early_spheroid", "eversion", "mature", "senescent"},
				},
				"end_stage": {
					Type:        "string",
					Description: "Last stage of the range (default mature)",
					Default:     "mature",
					Enum:        []any{"progenitor", "early_spheroid", "eversion", "mature", "senescent"},
				},
				"size_micrometers": {
					Type:        "number",
					Description: "Mature reference size (default 150)",
					Default:     150,
					Minimum:     &minSize,
					Maximum:     &maxSize,
				},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			seq, err := s.composer.GenerateLifeCycle(
				taxonomy.MorphotypeID(stringArg(args, "morphotype", "")),
				taxonomy.StageID(stringArg(args, "start_stage", "progenitor")),
				taxonomy.StageID(stringArg(args, "end_stage", "mature")),
				floatArg(args, "size_micrometers", 150),
			)
			if err != nil {
				return "", err
			}
			return marshal(seq)
		},
	}
}

// SimulateSwarmBehavior exposes multi-entity swarm composition.
func (s *Set) SimulateSwarmBehavior() *tools.Tool {
	return &tools.Tool{
		Name:        "simulate_swarm_behavior",
		Description: "Generate parameters for multiple anthrobots in a collective arrangement",
		Category:    tools.CategoryScene,
		Schema: tools.Schema{
			Properties: map[string]tools.Property{
				"bot_count": {
					Type:        "integer",
					Description: "Number of anthrobots (default 5)",
					Default:     5,
				},
				"morphotype_mix": {
					Type:        "object",
					Description: "Morphotype -> proportion map summing to 1 (default equal thirds)",
				},
				"behavior": {
					Type:        "string",
					Description: "Collective behavior (default swimming)",
					Default:     "swimming",
					Enum:        []any{"swimming", "wound_seeking", "bridge_formation"},
				},
				"imaging_style": {
					Type:        "string",
					Description: "Rendering aesthetics (default scientific)",
					Default:     "scientific",
					Enum:        []any{"scientific", "artistic", "depth_map"},
				},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			mix, err := mixArg(args, "morphotype_mix")
			if err != nil {
				return "", err
			}
			swarm, err := s.composer.SimulateSwarm(
				intArg(args, "bot_count", 5),
				mix,
				taxonomy.BehaviorID(stringArg(args, "behavior", "swimming")),
				taxonomy.StyleID(stringArg(args, "imaging_style", "scientific")),
			)
			if err != nil {
				return "", err
			}
			return marshal(swarm)
		},
	}
}

// WoundHealingScenario exposes the fixed bridge-formation scene.
func (s *Set) WoundHealingScenario() *tools.Tool {
	return &tools.Tool{
		Name:        "get_wound_healing_scenario",
		Description: "Get the scripted four-frame wound healing bridge formation sequence",
		Category:    tools.CategoryScene,
		Schema:      tools.Schema{Properties: map[string]tools.Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			w, err := s.composer.WoundHealingScenario()
			if err != nil {
				return "", err
			}
			return marshal(w)
		},
	}
}
