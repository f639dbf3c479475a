// Package morpho defines the morphology tool set: every core operation of
// the engine wrapped as a registry tool with a JSON argument schema.
package morpho

import (
	"fmt"

	"anthrobot/internal/morphism"
	"anthrobot/internal/scene"
	"anthrobot/internal/synth"
	"anthrobot/internal/taxonomy"
	"anthrobot/internal/tools"
)

// Set wires the tool definitions to one engine instance.
type Set struct {
	store    *taxonomy.Store
	engine   *morphism.Engine
	synth    *synth.Synthesizer
	composer *scene.Composer
}

// NewSet builds the tool set over a taxonomy store.
func NewSet(store *taxonomy.Store) *Set {
	s := synth.NewSynthesizer(store)
	return &Set{
		store:    store,
		engine:   s.Engine(),
		synth:    s,
		composer: scene.NewComposer(s),
	}
}

// Register adds every morphology tool to the registry.
func (s *Set) Register(r *tools.Registry) {
	for _, t := range s.Tools() {
		r.MustRegister(t)
	}
}

// Tools returns all tool definitions in registration order.
func (s *Set) Tools() []*tools.Tool {
	return []*tools.Tool{
		s.ListMorphotypes(),
		s.MovementVocabulary(),
		s.LifeCycleStages(),
		s.ImagingAesthetics(),
		s.ScaleReferences(),
		s.IntentionalityPrinciples(),
		s.CompositionDomains(),
		s.ResearchAttribution(),
		s.MapMorphologyToBehavior(),
		s.MorphotypeSpecifications(),
		s.CalculateSizeEffects(),
		s.GenerateVisualization(),
		s.GenerateLifeCycleSequence(),
		s.SimulateSwarmBehavior(),
		s.WoundHealingScenario(),
	}
}

// stringArg reads a string argument, falling back to def when absent.
func stringArg(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

// floatArg reads a numeric argument. JSON numbers arrive as float64, but a
// direct caller may pass int.
func floatArg(args map[string]any, key string, def float64) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

// intArg reads an integer argument with the same tolerance as floatArg.
func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

// mixArg reads the morphotype_mix argument. A missing or nil mix returns
// nil, which the composer replaces with its default.
func mixArg(args map[string]any, key string) (map[taxonomy.MorphotypeID]float64, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an object of morphotype -> proportion", key)
	}
	mix := make(map[taxonomy.MorphotypeID]float64, len(m))
	for k, v := range m {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("%s[%s] must be a number", key, k)
		}
		mix[taxonomy.MorphotypeID(k)] = f
	}
	return mix, nil
}
