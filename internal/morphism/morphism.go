// Package morphism implements the deterministic mapping rules that turn
// categorical morphology into behavior: shape x cilia -> movement,
// morphotype -> full specification, size -> behavioral tendency.
//
// Every function here is a pure lookup/derivation over the taxonomy store.
// Same inputs, same outputs, always.
package morphism

import (
	"fmt"

	"anthrobot/internal/taxonomy"
)

// Engine composes taxonomy tables into derived records.
type Engine struct {
	store *taxonomy.Store
}

// NewEngine returns an engine over the given store.
func NewEngine(store *taxonomy.Store) *Engine {
	return &Engine{store: store}
}

// MovementDerivation is the result of the shape x cilia morphism, the rule
// row joined with the full movement vocabulary entry.
type MovementDerivation struct {
	Shape              taxonomy.Shape        `json:"shape"`
	CiliaPattern       taxonomy.CiliaPattern `json:"cilia_pattern"`
	MovementType       taxonomy.MovementKind `json:"movement_type"`
	Speed              string                `json:"speed"`
	Trajectory         string                `json:"trajectory"`
	VisualSignature    string                `json:"visual_signature"`
	PhysicalReason     string                `json:"physical_reason"`
	MorphologicalCause string                `json:"morphological_cause"`
	Intentionality     string                `json:"intentionality"`
}

// DeriveMovement maps a shape+cilia pair to its movement class. The rule
// table is exhaustive over the declared domain; a miss returns
// UnmappedCombinationError rather than a silent default.
func (e *Engine) DeriveMovement(shape taxonomy.Shape, cilia taxonomy.CiliaPattern) (MovementDerivation, error) {
	for _, r := range e.store.MovementRules() {
		if r.Shape != shape || r.Cilia != cilia {
			continue
		}
		mv, err := e.store.Movement(r.Movement)
		if err != nil {
			return MovementDerivation{}, fmt.Errorf("rule table inconsistent: %w", err)
		}
		return MovementDerivation{
			Shape:              r.Shape,
			CiliaPattern:       r.Cilia,
			MovementType:       mv.Kind,
			Speed:              mv.Speed,
			Trajectory:         mv.Trajectory,
			VisualSignature:    mv.VisualSignature,
			PhysicalReason:     r.Reason,
			MorphologicalCause: mv.MorphologicalCause,
			Intentionality:     mv.Intentionality,
		}, nil
	}
	return MovementDerivation{}, &UnmappedCombinationError{Shape: shape, Cilia: cilia}
}

// Specification is the complete static record for one morphotype.
type Specification struct {
	Morphotype      taxonomy.MorphotypeID `json:"morphotype"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	Shape           taxonomy.Shape        `json:"shape"`
	CiliaPattern    taxonomy.CiliaPattern `json:"cilia_pattern"`
	Silhouette      taxonomy.Silhouette   `json:"silhouette"`
	TypicalMovement taxonomy.Movement     `json:"typical_movement"`
	VisualIdentity  string                `json:"visual_identity"`
}

// Specification resolves the full specification for one morphotype.
func (e *Engine) Specification(id taxonomy.MorphotypeID) (Specification, error) {
	m, err := e.store.Morphotype(id)
	if err != nil {
		return Specification{}, err
	}
	sil, err := e.store.Silhouette(id)
	if err != nil {
		return Specification{}, err
	}
	mv, err := e.store.Movement(m.Movement)
	if err != nil {
		return Specification{}, err
	}
	return Specification{
		Morphotype:      id,
		Name:            m.Name,
		Description:     m.Description,
		Shape:           m.Shape,
		CiliaPattern:    m.CiliaPattern,
		Silhouette:      sil,
		TypicalMovement: mv,
		VisualIdentity:  fmt.Sprintf("%s - %s", m.Name, m.Description),
	}, nil
}

// SizeEffect is the behavioral tendency derived from physical size.
type SizeEffect struct {
	SizeMicrometers float64 `json:"size_micrometers"`
	Category        string  `json:"size_category"`
	SizeRange       string  `json:"size_range"`
	Tendency        string  `json:"behavioral_tendency"`
	PhysicalReason  string  `json:"physical_reason"`
	ScaleReference  string  `json:"scale_reference"`
	VisualImpact    string  `json:"visual_impact"`
}

// DeriveSizeEffect validates size against [SizeMin, SizeMax] and maps it to
// its tendency bucket. Bucket boundaries live in the taxonomy, not here.
func (e *Engine) DeriveSizeEffect(sizeMicrometers float64) (SizeEffect, error) {
	if sizeMicrometers < taxonomy.SizeMin || sizeMicrometers > taxonomy.SizeMax {
		return SizeEffect{}, &RangeError{
			Field: "size_micrometers",
			Value: sizeMicrometers,
			Min:   taxonomy.SizeMin,
			Max:   taxonomy.SizeMax,
		}
	}

	// Min is inclusive only for the first bucket; Max is always inclusive.
	var bucket taxonomy.SizeBucket
	for i, b := range e.store.SizeBuckets() {
		aboveMin := sizeMicrometers > b.Min
		if i == 0 {
			aboveMin = sizeMicrometers >= b.Min
		}
		if aboveMin && sizeMicrometers <= b.Max {
			bucket = b
			break
		}
	}

	ref := scaleReference(sizeMicrometers)
	return SizeEffect{
		SizeMicrometers: sizeMicrometers,
		Category:        bucket.Bucket,
		SizeRange:       fmt.Sprintf("%g-%g micrometers", bucket.Min, bucket.Max),
		Tendency:        bucket.Tendency,
		PhysicalReason:  bucket.Reason,
		ScaleReference:  ref,
		VisualImpact:    fmt.Sprintf("At %gum, appears %s", sizeMicrometers, lowerFirst(ref)),
	}, nil
}

// scaleReference picks a human-scale comparison for a size already known to
// be in range. Thresholds follow the published comparisons.
func scaleReference(size float64) string {
	switch {
	case size < 70:
		return "Smaller than a human hair diameter (70um)"
	case size < 100:
		return "About human hair thickness"
	case size < 300:
		return "2-4x human hair thickness"
	default:
		return "Visible as a small dot to the naked eye"
	}
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
