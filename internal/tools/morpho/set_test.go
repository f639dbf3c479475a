package morpho

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anthrobot/internal/taxonomy"
	"anthrobot/internal/tools"
)

func newRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	r := tools.NewRegistry()
	NewSet(taxonomy.MustLoad()).Register(r)
	return r
}

func TestRegisterAllTools(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	assert.Equal(t, 15, r.Count())

	// Every tool definition must validate and carry a schema.
	for _, tool := range r.All() {
		assert.NoError(t, tool.Validate(), tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.NotEmpty(t, tool.Category, tool.Name)
		for _, req := range tool.Schema.Required {
			_, ok := tool.Schema.Properties[req]
			assert.True(t, ok, "%s: required arg %s missing from properties", tool.Name, req)
		}
	}
}

func TestReferenceToolsReturnMarkdown(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	ctx := context.Background()

	names := []string{
		"list_morphotypes",
		"get_movement_vocabulary",
		"get_life_cycle_stages",
		"get_imaging_aesthetics",
		"get_scale_references",
		"get_intentionality_principles",
		"suggest_composition_domains",
		"get_research_attribution",
	}
	for _, name := range names {
		result, err := r.Execute(ctx, name, map[string]any{})
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(result.Output, "#"), "%s should start with a markdown heading", name)
	}
}

func TestListMorphotypesContent(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	result, err := r.Execute(context.Background(), "list_morphotypes", map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, result.Output, "Spherical Wiggler")
	assert.Contains(t, result.Output, "Asymmetric Circler")
	assert.Contains(t, result.Output, "Ellipsoidal Swimmer")
}

func TestMapMorphologyToBehaviorTool(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	result, err := r.Execute(context.Background(), "map_morphology_to_behavior", map[string]any{
		"shape":         "spherical",
		"cilia_pattern": "fully_ciliated",
	})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Output), &out))
	assert.Equal(t, "stationary_wiggler", out["movement_type"])
}

func TestMapMorphologyToBehaviorUnmapped(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	_, err := r.Execute(context.Background(), "map_morphology_to_behavior", map[string]any{
		"shape":         "spherical",
		"cilia_pattern": "dispersed_patches",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no movement rule")
}

func TestCalculateSizeEffectsTool(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	result, err := r.Execute(context.Background(), "calculate_size_effects", map[string]any{
		"size_micrometers": 150.0,
	})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Output), &out))
	assert.Equal(t, "medium", out["size_category"])

	_, err = r.Execute(context.Background(), "calculate_size_effects", map[string]any{})
	assert.ErrorIs(t, err, tools.ErrMissingRequiredArg)
}

func TestGenerateVisualizationDefaults(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	result, err := r.Execute(context.Background(), "generate_anthrobot_visualization", map[string]any{
		"morphotype": "morphotype_1",
	})
	require.NoError(t, err)

	var out struct {
		Specs struct {
			Size  float64 `json:"size_micrometers"`
			Stage string  `json:"life_stage"`
		} `json:"anthrobot_specifications"`
		Imaging struct {
			Style string `json:"style"`
		} `json:"imaging_aesthetics"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &out))
	assert.Equal(t, 150.0, out.Specs.Size)
	assert.Equal(t, "mature", out.Specs.Stage)
	assert.Equal(t, "scientific", out.Imaging.Style)
}

func TestSimulateSwarmBehaviorTool(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	result, err := r.Execute(context.Background(), "simulate_swarm_behavior", map[string]any{
		"bot_count": float64(3), // JSON numbers arrive as float64
		"morphotype_mix": map[string]any{
			"morphotype_3": float64(1),
		},
	})
	require.NoError(t, err)

	var out struct {
		TotalBots int `json:"total_bots"`
		Bots      []struct {
			Morphotype string `json:"morphotype"`
		} `json:"individual_bots"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &out))
	assert.Equal(t, 3, out.TotalBots)
	require.Len(t, out.Bots, 3)
	for _, b := range out.Bots {
		assert.Equal(t, "morphotype_3", b.Morphotype)
	}
}

func TestGenerateLifeCycleSequenceTool(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	result, err := r.Execute(context.Background(), "generate_life_cycle_sequence", map[string]any{
		"morphotype":  "morphotype_2",
		"start_stage": "eversion",
		"end_stage":   "senescent",
	})
	require.NoError(t, err)

	var out struct {
		Frames []struct {
			Stage string `json:"stage"`
		} `json:"frames"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &out))
	require.Len(t, out.Frames, 3)
	assert.Equal(t, "eversion", out.Frames[0].Stage)
}

func TestWoundHealingScenarioTool(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)

	result, err := r.Execute(context.Background(), "get_wound_healing_scenario", map[string]any{})
	require.NoError(t, err)

	var out struct {
		Frames []json.RawMessage `json:"visual_sequence"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &out))
	assert.Len(t, out.Frames, 4)
}

func TestMixArgRejectsBadShapes(t *testing.T) {
	t.Parallel()

	_, err := mixArg(map[string]any{"m": "not an object"}, "m")
	assert.Error(t, err)

	_, err = mixArg(map[string]any{"m": map[string]any{"morphotype_1": "high"}}, "m")
	assert.Error(t, err)

	mix, err := mixArg(map[string]any{}, "m")
	assert.NoError(t, err)
	assert.Nil(t, mix)
}
