package taxonomy

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed olog.yaml
var ologYAML []byte

// Store exposes read-only accessors over the loaded olog. It is safe for
// concurrent use: nothing mutates it after Load returns.
type Store struct {
	morphotypes    map[MorphotypeID]Morphotype
	movements      map[MovementKind]Movement
	stages         map[StageID]Stage
	styles         map[StyleID]ImagingStyle
	channels       map[string]Channel
	composite      CompositeAesthetic
	scale          ScaleReferences
	intent         Intentionality
	movementRules  []MovementRule
	sizeBuckets    []SizeBucket
	silhouettes    map[MorphotypeID]Silhouette
	ciliaRendering map[CiliaPattern]CiliaRendering
	moveRendering  map[string]MovementRendering
	behaviors      map[BehaviorID]Behavior
	compositions   map[string]CompositionTarget
	citations      Citations
}

// document is the YAML shape of olog.yaml.
type document struct {
	Morphotypes        map[MorphotypeID]Morphotype       `yaml:"morphotypes"`
	MovementTypes      map[MovementKind]Movement         `yaml:"movement_types"`
	LifeStages         map[StageID]Stage                 `yaml:"life_stages"`
	ImagingStyles      map[StyleID]ImagingStyle          `yaml:"imaging_styles"`
	Channels           map[string]Channel                `yaml:"fluorescence_channels"`
	CompositeAesthetic CompositeAesthetic                `yaml:"composite_aesthetic"`
	ScaleReferences    ScaleReferences                   `yaml:"scale_references"`
	Intentionality     Intentionality                    `yaml:"intentionality"`
	Morphisms          struct {
		ShapeToMovement []MovementRule `yaml:"shape_to_movement"`
		SizeToBehavior  []SizeBucket   `yaml:"size_to_behavior"`
	} `yaml:"morphisms"`
	Silhouettes       map[MorphotypeID]Silhouette      `yaml:"silhouettes"`
	CiliaRendering    map[CiliaPattern]CiliaRendering  `yaml:"cilia_rendering"`
	MovementRendering map[string]MovementRendering     `yaml:"movement_rendering"`
	Behaviors         map[BehaviorID]Behavior          `yaml:"behaviors"`
	CompositionTargets map[string]CompositionTarget    `yaml:"composition_targets"`
	Citations         Citations                        `yaml:"citations"`
}

var (
	loadOnce  sync.Once
	loadedSt  *Store
	loadedErr error
)

// Load parses the embedded olog once and returns the shared Store. Subsequent
// calls return the same instance.
func Load() (*Store, error) {
	loadOnce.Do(func() {
		loadedSt, loadedErr = parse(ologYAML)
	})
	return loadedSt, loadedErr
}

// MustLoad is Load for init paths where a broken embedded olog is fatal.
func MustLoad() *Store {
	s, err := Load()
	if err != nil {
		panic(fmt.Sprintf("taxonomy: embedded olog invalid: %v", err))
	}
	return s
}

func parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse olog: %w", err)
	}

	s := &Store{
		morphotypes:    doc.Morphotypes,
		movements:      doc.MovementTypes,
		stages:         doc.LifeStages,
		styles:         doc.ImagingStyles,
		channels:       doc.Channels,
		composite:      doc.CompositeAesthetic,
		scale:          doc.ScaleReferences,
		intent:         doc.Intentionality,
		movementRules:  doc.Morphisms.ShapeToMovement,
		sizeBuckets:    doc.Morphisms.SizeToBehavior,
		silhouettes:    doc.Silhouettes,
		ciliaRendering: doc.CiliaRendering,
		moveRendering:  doc.MovementRendering,
		behaviors:      doc.Behaviors,
		compositions:   doc.CompositionTargets,
		citations:      doc.Citations,
	}

	// Stamp map keys back into the records so returned values are
	// self-describing.
	for id, m := range s.morphotypes {
		m.ID = id
		s.morphotypes[id] = m
	}
	for k, m := range s.movements {
		m.Kind = k
		s.movements[k] = m
	}
	for id, st := range s.stages {
		st.ID = id
		s.stages[id] = st
	}
	for id, st := range s.styles {
		st.ID = id
		s.styles[id] = st
	}
	for id, b := range s.behaviors {
		b.ID = id
		s.behaviors[id] = b
	}

	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// check asserts table completeness and cross-reference integrity. A gap here
// is a taxonomy defect and must fail loading, not surface later as a
// mysterious lookup miss.
func (s *Store) check() error {
	for _, id := range MorphotypeIDs {
		m, ok := s.morphotypes[id]
		if !ok {
			return fmt.Errorf("olog gap: morphotype %s missing", id)
		}
		if _, ok := s.movements[m.Movement]; !ok {
			return fmt.Errorf("olog gap: morphotype %s references unknown movement %s", id, m.Movement)
		}
		if _, ok := s.silhouettes[id]; !ok {
			return fmt.Errorf("olog gap: silhouette for %s missing", id)
		}
		if _, ok := s.ciliaRendering[m.CiliaPattern]; !ok {
			return fmt.Errorf("olog gap: cilia rendering for %s missing", m.CiliaPattern)
		}
	}
	for _, id := range StageOrder {
		if _, ok := s.stages[id]; !ok {
			return fmt.Errorf("olog gap: life stage %s missing", id)
		}
	}
	for _, id := range StyleIDs {
		if _, ok := s.styles[id]; !ok {
			return fmt.Errorf("olog gap: imaging style %s missing", id)
		}
	}
	for _, id := range BehaviorIDs {
		if _, ok := s.behaviors[id]; !ok {
			return fmt.Errorf("olog gap: behavior %s missing", id)
		}
	}
	for _, r := range s.movementRules {
		if _, ok := s.movements[r.Movement]; !ok {
			return fmt.Errorf("olog gap: rule %s+%s references unknown movement %s", r.Shape, r.Cilia, r.Movement)
		}
	}
	// The rule table must cover every declared morphotype's shape+cilia pair.
	for _, id := range MorphotypeIDs {
		m := s.morphotypes[id]
		found := false
		for _, r := range s.movementRules {
			if r.Shape == m.Shape && r.Cilia == m.CiliaPattern {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("olog gap: no movement rule for %s (%s + %s)", id, m.Shape, m.CiliaPattern)
		}
	}
	// Size buckets must be contiguous over [SizeMin, SizeMax].
	if len(s.sizeBuckets) == 0 {
		return fmt.Errorf("olog gap: size_to_behavior table empty")
	}
	if s.sizeBuckets[0].Min != SizeMin {
		return fmt.Errorf("olog gap: first size bucket starts at %v, want %v", s.sizeBuckets[0].Min, SizeMin)
	}
	for i := 1; i < len(s.sizeBuckets); i++ {
		if s.sizeBuckets[i].Min != s.sizeBuckets[i-1].Max {
			return fmt.Errorf("olog gap: size buckets %s and %s not contiguous", s.sizeBuckets[i-1].Bucket, s.sizeBuckets[i].Bucket)
		}
	}
	if last := s.sizeBuckets[len(s.sizeBuckets)-1]; last.Max != SizeMax {
		return fmt.Errorf("olog gap: last size bucket ends at %v, want %v", last.Max, SizeMax)
	}
	if len(s.moveRendering) == 0 {
		return fmt.Errorf("olog gap: movement_rendering table empty")
	}
	return nil
}

// Morphotypes returns all morphotypes in canonical order.
func (s *Store) Morphotypes() []Morphotype {
	out := make([]Morphotype, 0, len(MorphotypeIDs))
	for _, id := range MorphotypeIDs {
		out = append(out, s.morphotypes[id])
	}
	return out
}

// Morphotype returns one morphotype record by id.
func (s *Store) Morphotype(id MorphotypeID) (Morphotype, error) {
	m, ok := s.morphotypes[id]
	if !ok {
		return Morphotype{}, notFound("morphotype", string(id), morphotypeKeys())
	}
	return m, nil
}

// Movements returns the movement vocabulary in a fixed order.
func (s *Store) Movements() []Movement {
	kinds := []MovementKind{MovementStationaryWiggler, MovementCircularSwimmer, MovementStraightSwimmer}
	out := make([]Movement, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, s.movements[k])
	}
	return out
}

// Movement returns one movement vocabulary entry.
func (s *Store) Movement(kind MovementKind) (Movement, error) {
	m, ok := s.movements[kind]
	if !ok {
		return Movement{}, notFound("movement_type", string(kind), nil)
	}
	return m, nil
}

// Stages returns all life stages in developmental order.
func (s *Store) Stages() []Stage {
	out := make([]Stage, 0, len(StageOrder))
	for _, id := range StageOrder {
		out = append(out, s.stages[id])
	}
	return out
}

// Stage returns one life stage record.
func (s *Store) Stage(id StageID) (Stage, error) {
	st, ok := s.stages[id]
	if !ok {
		return Stage{}, notFound("life_stage", string(id), stageKeys())
	}
	return st, nil
}

// Styles returns all imaging styles in canonical order.
func (s *Store) Styles() []ImagingStyle {
	out := make([]ImagingStyle, 0, len(StyleIDs))
	for _, id := range StyleIDs {
		out = append(out, s.styles[id])
	}
	return out
}

// Style returns one imaging style record.
func (s *Store) Style(id StyleID) (ImagingStyle, error) {
	st, ok := s.styles[id]
	if !ok {
		return ImagingStyle{}, notFound("imaging_style", string(id), styleKeys())
	}
	return st, nil
}

// Channels returns the fluorescence channel table.
func (s *Store) Channels() map[string]Channel { return s.channels }

// Composite returns the composite fluorescence aesthetic.
func (s *Store) Composite() CompositeAesthetic { return s.composite }

// Scale returns the scale reference tables.
func (s *Store) Scale() ScaleReferences { return s.scale }

// Intentionality returns the intentionality principle set.
func (s *Store) Intentionality() Intentionality { return s.intent }

// MovementRules returns the full shape x cilia rule table.
func (s *Store) MovementRules() []MovementRule { return s.movementRules }

// SizeBuckets returns the size -> tendency bucket table in ascending order.
func (s *Store) SizeBuckets() []SizeBucket { return s.sizeBuckets }

// Silhouette returns the silhouette geometry for a morphotype.
func (s *Store) Silhouette(id MorphotypeID) (Silhouette, error) {
	sil, ok := s.silhouettes[id]
	if !ok {
		return Silhouette{}, notFound("silhouette", string(id), morphotypeKeys())
	}
	return sil, nil
}

// CiliaRendering returns the rendering record for a cilia pattern.
func (s *Store) CiliaRendering(p CiliaPattern) (CiliaRendering, error) {
	r, ok := s.ciliaRendering[p]
	if !ok {
		return CiliaRendering{}, notFound("cilia_rendering", string(p), nil)
	}
	return r, nil
}

// MovementRendering returns the still-frame visualization technique by key
// ("static_image" or "trajectory_traces").
func (s *Store) MovementRendering(key string) (MovementRendering, error) {
	r, ok := s.moveRendering[key]
	if !ok {
		return MovementRendering{}, notFound("movement_rendering", key, nil)
	}
	return r, nil
}

// Behavior returns one collective behavior record.
func (s *Store) Behavior(id BehaviorID) (Behavior, error) {
	b, ok := s.behaviors[id]
	if !ok {
		return Behavior{}, notFound("behavior", string(id), behaviorKeys())
	}
	return b, nil
}

// CompositionTargets returns the cross-domain composition table.
func (s *Store) CompositionTargets() map[string]CompositionTarget { return s.compositions }

// Citations returns the research attribution records.
func (s *Store) Citations() Citations { return s.citations }

func morphotypeKeys() []string {
	out := make([]string, len(MorphotypeIDs))
	for i, id := range MorphotypeIDs {
		out[i] = string(id)
	}
	return out
}

func stageKeys() []string {
	out := make([]string, len(StageOrder))
	for i, id := range StageOrder {
		out[i] = string(id)
	}
	return out
}

func styleKeys() []string {
	out := make([]string, len(StyleIDs))
	for i, id := range StyleIDs {
		out[i] = string(id)
	}
	return out
}

func behaviorKeys() []string {
	out := make([]string, len(BehaviorIDs))
	for i, id := range BehaviorIDs {
		out[i] = string(id)
	}
	return out
}
