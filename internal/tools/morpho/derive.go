package morpho

import (
	"context"
	"encoding/json"
	"fmt"

	"anthrobot/internal/taxonomy"
	"anthrobot/internal/tools"
)

// marshal renders a structured result as indented JSON for the transport.
func marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}

// MapMorphologyToBehavior exposes the shape x cilia -> movement morphism.
func (s *Set) MapMorphologyToBehavior() *tools.Tool {
	return &tools.Tool{
		Name:        "map_morphology_to_behavior",
		Description: "Deterministic mapping from shape and cilia pattern to movement behavior",
		Category:    tools.CategoryMorphism,
		Schema: tools.Schema{
			Required: []string{"shape", "cilia_pattern"},
			Properties: map[string]tools.Property{
				"shape": {
					Type:        "string",
					Description: "Body shape category",
					Enum:        []any{"spherical", "potato_shaped", "ellipsoidal"},
				},
				"cilia_pattern": {
					Type:        "string",
					Description: "Surface cilia placement",
					Enum:        []any{"fully_ciliated", "polar_clustered", "dispersed_patches"},
				},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			shape := taxonomy.Shape(stringArg(args, "shape", ""))
			cilia := taxonomy.CiliaPattern(stringArg(args, "cilia_pattern", ""))
			d, err := s.engine.DeriveMovement(shape, cilia)
			if err != nil {
				return "", err
			}
			return marshal(d)
		},
	}
}

// MorphotypeSpecifications exposes the full static record for a morphotype.
func (s *Set) MorphotypeSpecifications() *tools.Tool {
	return &tools.Tool{
		Name:        "get_morphotype_specifications",
		Description: "Get complete visual specifications for a morphotype",
		Category:    tools.CategoryMorphism,
		Schema: tools.Schema{
			Required: []string{"morphotype"},
			Properties: map[string]tools.Property{
				"morphotype": {
					Type:        "string",
					Description: "Morphotype identifier",
					Enum:        []any{"morphotype_1", "morphotype_2", "morphotype_3"},
				},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			id := taxonomy.MorphotypeID(stringArg(args, "morphotype", ""))
			spec, err := s.engine.Specification(id)
			if err != nil {
				return "", err
			}
			return marshal(spec)
		},
	}
}

// CalculateSizeEffects exposes the size -> behavioral tendency morphism.
func (s *Set) CalculateSizeEffects() *tools.Tool {
	minSize, maxSize := taxonomy.SizeMin, taxonomy.SizeMax
	return &tools.Tool{
		Name:        "calculate_size_effects",
		Description: "Determine behavioral tendencies from anthrobot size",
		Category:    tools.CategoryMorphism,
		Schema: tools.Schema{
			Required: []string{"size_micrometers"},
			Properties: map[string]tools.Property{
				"size_micrometers": {
					Type:        "number",
					Description: "Size in micrometers",
					Minimum:     &minSize,
					Maximum:     &maxSize,
				},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			size := floatArg(args, "size_micrometers", 0)
			effect, err := s.engine.DeriveSizeEffect(size)
			if err != nil {
				return "", err
			}
			return marshal(effect)
		},
	}
}
