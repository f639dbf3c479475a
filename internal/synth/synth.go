// Package synth assembles the full visual parameter bundle for a single
// anthrobot from morphism engine outputs plus caller-supplied life stage and
// imaging style.
//
// Synthesize is idempotent: identical inputs always yield an identical
// bundle. The synthesis instructions are a fixed template over resolved
// fields, never free-form text.
package synth

import (
	"fmt"
	"strings"

	"anthrobot/internal/morphism"
	"anthrobot/internal/taxonomy"
)

// Synthesizer builds VisualParameterBundles over one taxonomy store.
type Synthesizer struct {
	store  *taxonomy.Store
	engine *morphism.Engine
}

// NewSynthesizer returns a synthesizer over the given store.
func NewSynthesizer(store *taxonomy.Store) *Synthesizer {
	return &Synthesizer{store: store, engine: morphism.NewEngine(store)}
}

// Engine exposes the underlying morphism engine for callers that need the
// raw derivations alongside full bundles.
func (s *Synthesizer) Engine() *morphism.Engine { return s.engine }

// Store exposes the underlying taxonomy store.
func (s *Synthesizer) Store() *taxonomy.Store { return s.store }

// Specifications is the identity block of a bundle.
type Specifications struct {
	Morphotype      taxonomy.MorphotypeID `json:"morphotype"`
	Name            string                `json:"name"`
	SizeMicrometers float64               `json:"size_micrometers"`
	LifeStage       taxonomy.StageID      `json:"life_stage"`
}

// CoronaState is the stage-gated structural state of the cilia corona.
type CoronaState string

const (
	CoronaNone     CoronaState = "none"     // progenitor: no cilia yet
	CoronaInternal CoronaState = "internal" // early spheroid: cilia face the lumen
	CoronaEmerging CoronaState = "emerging" // eversion: corona appearing in patches
	CoronaFull     CoronaState = "full"     // mature
	CoronaDegraded CoronaState = "degraded" // senescent: thinning and patchy
)

// coronaByStage gates which corona structure exists at each life stage. The
// stage-derived state overrides whatever the morphotype's cilia pattern
// would cosmetically imply (a progenitor never shows a corona).
var coronaByStage = map[taxonomy.StageID]CoronaState{
	taxonomy.StageProgenitor:    CoronaNone,
	taxonomy.StageEarlySpheroid: CoronaInternal,
	taxonomy.StageEversion:      CoronaEmerging,
	taxonomy.StageMature:        CoronaFull,
	taxonomy.StageSenescent:     CoronaDegraded,
}

// coronaNotes carries the visual consequence of each gated state.
var coronaNotes = map[CoronaState]string{
	CoronaNone:     "No corona at this stage; cilia have not yet formed",
	CoronaInternal: "Cilia beat inside the lumen; outside surface is bare",
	CoronaEmerging: "Corona surfacing in patches as the body everts",
	CoronaFull:     "Corona of motile cilia, the signature visual feature",
	CoronaDegraded: "Corona thinned and patchy with senescence",
}

// CiliaCorona is the corona block of a bundle.
type CiliaCorona struct {
	Pattern   taxonomy.CiliaPattern   `json:"pattern"`
	Coverage  CoronaState             `json:"coverage"`
	Rendering taxonomy.CiliaRendering `json:"rendering"`
	Note      string                  `json:"visual_identity"`
}

// MovementSignature is the movement block of a bundle, with the size-bucket
// tendency folded into the description.
type MovementSignature struct {
	MovementType    taxonomy.MovementKind      `json:"movement_type"`
	Cause           string                     `json:"morphological_cause"`
	Speed           string                     `json:"speed"`
	Trajectory      string                     `json:"trajectory"`
	VisualSignature string                     `json:"visual_signature"`
	Explanation     string                     `json:"causal_explanation"`
	SizeModulation  string                     `json:"size_modulation"`
	Rendering       taxonomy.MovementRendering `json:"rendering"`
}

// ScaleContext is the scale block of a bundle.
type ScaleContext struct {
	SizeMicrometers float64 `json:"size_micrometers"`
	Category        string  `json:"size_category"`
	Reference       string  `json:"scale_reference"`
	VisualImpact    string  `json:"visual_impact"`
}

// StageCharacteristics is the life-stage block of a bundle.
type StageCharacteristics struct {
	Stage      taxonomy.StageID `json:"stage"`
	Timepoint  string           `json:"timepoint"`
	Morphology string           `json:"morphology"`
	Visual     string           `json:"visual_appearance"`
}

// ImagingAesthetics is the imaging block of a bundle.
type ImagingAesthetics struct {
	Style    taxonomy.StyleID  `json:"style"`
	Modality string            `json:"modality"`
	Palette  map[string]string `json:"palette"`
	Contrast string            `json:"contrast"`
	Blur     string            `json:"blur"`
}

// Bundle is the complete visual parameter set for one anthrobot. It is a
// value: constructed fresh per call, never mutated afterwards.
type Bundle struct {
	Specifications        Specifications       `json:"anthrobot_specifications"`
	SilhouetteGeometry    taxonomy.Silhouette  `json:"silhouette_geometry"`
	CiliaCorona           CiliaCorona          `json:"cilia_corona"`
	MovementSignature     MovementSignature    `json:"movement_signature"`
	ScaleContext          ScaleContext         `json:"scale_context"`
	LifeStage             StageCharacteristics `json:"life_stage_characteristics"`
	ImagingAesthetics     ImagingAesthetics    `json:"imaging_aesthetics"`
	SynthesisInstructions string               `json:"synthesis_instructions"`
}

// Synthesize validates all four inputs, then assembles the bundle. It fails
// on the first violation with a ValidationError naming the field; no partial
// bundle is ever returned.
func (s *Synthesizer) Synthesize(morphotype taxonomy.MorphotypeID, sizeMicrometers float64, stage taxonomy.StageID, style taxonomy.StyleID) (Bundle, error) {
	spec, err := s.engine.Specification(morphotype)
	if err != nil {
		return Bundle{}, &ValidationError{Field: "morphotype", Value: string(morphotype), Domain: "morphotype_1 | morphotype_2 | morphotype_3"}
	}
	if sizeMicrometers < taxonomy.SizeMin || sizeMicrometers > taxonomy.SizeMax {
		return Bundle{}, &ValidationError{Field: "size_micrometers", Value: sizeMicrometers, Domain: fmt.Sprintf("[%g, %g]", taxonomy.SizeMin, taxonomy.SizeMax)}
	}
	stageRec, err := s.store.Stage(stage)
	if err != nil {
		return Bundle{}, &ValidationError{Field: "life_stage", Value: string(stage), Domain: strings.Join(stageNames(), " | ")}
	}
	styleRec, err := s.store.Style(style)
	if err != nil {
		return Bundle{}, &ValidationError{Field: "imaging_style", Value: string(style), Domain: "scientific | artistic | depth_map"}
	}

	// Inputs valid from here; remaining lookups are over keys the store has
	// already vouched for, so failures indicate an internal taxonomy gap.
	movement, err := s.engine.DeriveMovement(spec.Shape, spec.CiliaPattern)
	if err != nil {
		return Bundle{}, err
	}
	sizeEffect, err := s.engine.DeriveSizeEffect(sizeMicrometers)
	if err != nil {
		return Bundle{}, err
	}
	corona, err := s.ciliaCorona(spec.CiliaPattern, stage)
	if err != nil {
		return Bundle{}, err
	}
	moveRendering, err := s.movementRendering(morphotype)
	if err != nil {
		return Bundle{}, err
	}

	b := Bundle{
		Specifications: Specifications{
			Morphotype:      morphotype,
			Name:            spec.Name,
			SizeMicrometers: sizeMicrometers,
			LifeStage:       stage,
		},
		SilhouetteGeometry: spec.Silhouette,
		CiliaCorona:        corona,
		MovementSignature: MovementSignature{
			MovementType:    movement.MovementType,
			Cause:           movement.MorphologicalCause,
			Speed:           movement.Speed,
			Trajectory:      movement.Trajectory,
			VisualSignature: movement.VisualSignature,
			Explanation:     movement.PhysicalReason,
			SizeModulation:  fmt.Sprintf("Displacement scaled by %s size class: %s", sizeEffect.Category, lowerFirst(sizeEffect.Tendency)),
			Rendering:       moveRendering,
		},
		ScaleContext: ScaleContext{
			SizeMicrometers: sizeMicrometers,
			Category:        sizeEffect.Category,
			Reference:       sizeEffect.ScaleReference,
			VisualImpact:    sizeEffect.VisualImpact,
		},
		LifeStage: StageCharacteristics{
			Stage:      stage,
			Timepoint:  stageRec.Timepoint,
			Morphology: stageRec.Morphology,
			Visual:     stageRec.Visual,
		},
		ImagingAesthetics: ImagingAesthetics{
			Style:    style,
			Modality: styleRec.Modality,
			Palette:  styleRec.Palette,
			Contrast: styleRec.Contrast,
			Blur:     styleRec.Blur,
		},
	}
	b.SynthesisInstructions = instructions(spec, b)
	return b, nil
}

// ciliaCorona applies the stage gate to the morphotype's cilia pattern. For
// stages without an external corona the pattern rendering is withheld; the
// note describes what is visible instead.
func (s *Synthesizer) ciliaCorona(pattern taxonomy.CiliaPattern, stage taxonomy.StageID) (CiliaCorona, error) {
	state := coronaByStage[stage]
	corona := CiliaCorona{
		Pattern:  pattern,
		Coverage: state,
		Note:     coronaNotes[state],
	}
	if state == CoronaNone || state == CoronaInternal {
		return corona, nil
	}
	rendering, err := s.store.CiliaRendering(pattern)
	if err != nil {
		return CiliaCorona{}, err
	}
	corona.Rendering = rendering
	return corona, nil
}

// movementRendering picks the still-frame technique: the stationary
// morphotype reads best as a single sharp frame, the swimmers as traces.
func (s *Synthesizer) movementRendering(id taxonomy.MorphotypeID) (taxonomy.MovementRendering, error) {
	key := "trajectory_traces"
	if id == taxonomy.Morphotype1 {
		key = "static_image"
	}
	return s.store.MovementRendering(key)
}

// instructions renders the fixed synthesis template over resolved fields.
func instructions(spec morphism.Specification, b Bundle) string {
	return fmt.Sprintf(
		"Render a %s (%s) at %g micrometers, life stage %s (%s). "+
			"Silhouette: %s, aspect ratio %.1f, %s symmetry. "+
			"Corona: %s coverage - %s. "+
			"Movement: %s (%s); %s. "+
			"Scale: %s. "+
			"Imaging: %s style, %s; contrast %s; %s. "+
			"Keep the organic self-assembled look; the corona is the signature feature.",
		spec.Name, b.Specifications.Morphotype,
		b.Specifications.SizeMicrometers,
		b.LifeStage.Stage, b.LifeStage.Timepoint,
		b.SilhouetteGeometry.BaseShape, b.SilhouetteGeometry.AspectRatio, b.SilhouetteGeometry.Symmetry,
		b.CiliaCorona.Coverage, lowerFirst(b.CiliaCorona.Note),
		b.MovementSignature.MovementType, lowerFirst(b.MovementSignature.Explanation), lowerFirst(b.MovementSignature.SizeModulation),
		lowerFirst(b.ScaleContext.Reference),
		b.ImagingAesthetics.Style, b.ImagingAesthetics.Modality, lowerFirst(b.ImagingAesthetics.Contrast), lowerFirst(b.ImagingAesthetics.Blur),
	)
}

func stageNames() []string {
	out := make([]string, len(taxonomy.StageOrder))
	for i, id := range taxonomy.StageOrder {
		out[i] = string(id)
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
