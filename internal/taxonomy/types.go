// Package taxonomy holds the immutable anthrobot reference tables (the olog):
// morphotypes, movement vocabulary, life stages, imaging aesthetics, scale
// references, intentionality principles and the morphism rule tables.
//
// The tables are baked into the binary via go:embed and never mutated after
// load. Every other package reads from here; nothing writes.
package taxonomy

// MorphotypeID identifies one of the three published anthrobot morphotypes.
type MorphotypeID string

const (
	Morphotype1 MorphotypeID = "morphotype_1" // Spherical Wiggler
	Morphotype2 MorphotypeID = "morphotype_2" // Asymmetric Circler
	Morphotype3 MorphotypeID = "morphotype_3" // Ellipsoidal Swimmer
)

// MorphotypeIDs is the canonical listing order.
var MorphotypeIDs = []MorphotypeID{Morphotype1, Morphotype2, Morphotype3}

// Shape is a canonical body shape category.
type Shape string

const (
	ShapeSpherical    Shape = "spherical"
	ShapePotatoShaped Shape = "potato_shaped"
	ShapeEllipsoidal  Shape = "ellipsoidal"
)

// CiliaPattern describes where motile cilia sit on the body surface.
type CiliaPattern string

const (
	CiliaFullyCiliated    CiliaPattern = "fully_ciliated"
	CiliaPolarClustered   CiliaPattern = "polar_clustered"
	CiliaDispersedPatches CiliaPattern = "dispersed_patches"
)

// MovementKind is a movement class derived from shape and cilia pattern.
type MovementKind string

const (
	MovementStationaryWiggler MovementKind = "stationary_wiggler"
	MovementCircularSwimmer   MovementKind = "circular_swimmer"
	MovementStraightSwimmer   MovementKind = "straight_swimmer"
)

// StageID identifies a life-cycle stage. Stages are totally ordered by
// StageOrder; comparisons go through StageIndex, never string comparison.
type StageID string

const (
	StageProgenitor    StageID = "progenitor"
	StageEarlySpheroid StageID = "early_spheroid"
	StageEversion      StageID = "eversion"
	StageMature        StageID = "mature"
	StageSenescent     StageID = "senescent"
)

// StageOrder is the developmental progression, earliest first.
var StageOrder = []StageID{
	StageProgenitor,
	StageEarlySpheroid,
	StageEversion,
	StageMature,
	StageSenescent,
}

// StageIndex returns the position of s in StageOrder, or -1 if s is not a
// declared stage.
func StageIndex(s StageID) int {
	for i, id := range StageOrder {
		if id == s {
			return i
		}
	}
	return -1
}

// StyleID identifies an imaging style.
type StyleID string

const (
	StyleScientific StyleID = "scientific"
	StyleArtistic   StyleID = "artistic"
	StyleDepthMap   StyleID = "depth_map"
)

// StyleIDs is the canonical listing order.
var StyleIDs = []StyleID{StyleScientific, StyleArtistic, StyleDepthMap}

// BehaviorID identifies a collective swarm behavior.
type BehaviorID string

const (
	BehaviorSwimming        BehaviorID = "swimming"
	BehaviorWoundSeeking    BehaviorID = "wound_seeking"
	BehaviorBridgeFormation BehaviorID = "bridge_formation"
)

// BehaviorIDs is the canonical listing order.
var BehaviorIDs = []BehaviorID{BehaviorSwimming, BehaviorWoundSeeking, BehaviorBridgeFormation}

// SizeMin and SizeMax bound the observed anthrobot size range in micrometers.
const (
	SizeMin = 30.0
	SizeMax = 500.0
)

// Morphotype is one canonical body-shape category with its defaults.
type Morphotype struct {
	ID           MorphotypeID `yaml:"-" json:"morphotype"`
	Name         string       `yaml:"name" json:"name"`
	Description  string       `yaml:"description" json:"description"`
	Shape        Shape        `yaml:"shape" json:"shape"`
	CiliaPattern CiliaPattern `yaml:"cilia_pattern" json:"cilia_pattern"`
	Movement     MovementKind `yaml:"movement" json:"movement"`
	SizeRange    string       `yaml:"size_range" json:"size_range"`
}

// Movement is one entry of the movement vocabulary.
type Movement struct {
	Kind               MovementKind `yaml:"-" json:"movement_type"`
	MorphologicalCause string       `yaml:"morphological_cause" json:"morphological_cause"`
	Speed              string       `yaml:"speed" json:"speed"`
	Trajectory         string       `yaml:"trajectory" json:"trajectory"`
	VisualSignature    string       `yaml:"visual_signature" json:"visual_signature"`
	Intentionality     string       `yaml:"intentionality" json:"intentionality"`
}

// Stage is one life-cycle stage record. Optional fields are empty when the
// stage has nothing to say for them, matching the source tables.
type Stage struct {
	ID              StageID `yaml:"-" json:"stage"`
	Timepoint       string  `yaml:"timepoint" json:"timepoint"`
	ElapsedHours    float64 `yaml:"elapsed_hours" json:"elapsed_hours"`
	Morphology      string  `yaml:"morphology" json:"morphology"`
	Visual          string  `yaml:"visual" json:"visual"`
	GeneExpression  string  `yaml:"gene_expression,omitempty" json:"gene_expression,omitempty"`
	Event           string  `yaml:"event,omitempty" json:"event,omitempty"`
	Behavior        string  `yaml:"behavior,omitempty" json:"behavior,omitempty"`
	EpigeneticState string  `yaml:"epigenetic_state,omitempty" json:"epigenetic_state,omitempty"`
	Fate            string  `yaml:"fate,omitempty" json:"fate,omitempty"`
}

// ImagingStyle is a rendering-aesthetics record, orthogonal to morphology.
type ImagingStyle struct {
	ID       StyleID           `yaml:"-" json:"style"`
	Modality string            `yaml:"modality" json:"modality"`
	Palette  map[string]string `yaml:"palette" json:"palette"`
	Contrast string            `yaml:"contrast" json:"contrast"`
	Blur     string            `yaml:"blur" json:"blur"`
}

// Channel is one fluorescence channel assignment.
type Channel struct {
	Stain        string `yaml:"stain" json:"stain"`
	Color        string `yaml:"color" json:"color"`
	Targets      string `yaml:"targets" json:"targets"`
	VisualEffect string `yaml:"visual_effect" json:"visual_effect"`
}

// CompositeAesthetic describes how the fluorescence channels read together.
type CompositeAesthetic struct {
	CoronaEffect    string `yaml:"corona_effect" json:"corona_effect"`
	DepthPerception string `yaml:"depth_perception" json:"depth_perception"`
	ColorHarmony    string `yaml:"color_harmony" json:"color_harmony"`
}

// ScaleReferences gives human-scale context for micrometer sizes.
type ScaleReferences struct {
	CellularScale struct {
		AnthrobotSize string   `yaml:"anthrobot_size" json:"anthrobot_size"`
		Comparison    []string `yaml:"comparison" json:"comparison"`
		VisualNiche   string   `yaml:"visual_niche" json:"visual_niche"`
	} `yaml:"cellular_scale" json:"cellular_scale"`
	RelativeToSource struct {
		SingleCell    string `yaml:"single_cell" json:"single_cell"`
		MatureBot     string `yaml:"mature_bot" json:"mature_bot"`
		ScalingFactor string `yaml:"scaling_factor" json:"scaling_factor"`
	} `yaml:"relative_to_source" json:"relative_to_source"`
}

// Principle is one intentionality principle. Optional fields mirror the
// unevenness of the source material.
type Principle struct {
	Principle                string `yaml:"principle" json:"principle"`
	Physics                  string `yaml:"physics,omitempty" json:"physics,omitempty"`
	Mechanism                string `yaml:"mechanism,omitempty" json:"mechanism,omitempty"`
	Discovery                string `yaml:"discovery,omitempty" json:"discovery,omitempty"`
	Hypothesis               string `yaml:"hypothesis,omitempty" json:"hypothesis,omitempty"`
	GeneExpression           string `yaml:"gene_expression,omitempty" json:"gene_expression,omitempty"`
	VisualConsequence        string `yaml:"visual_consequence,omitempty" json:"visual_consequence,omitempty"`
	VisualSignature          string `yaml:"visual_signature,omitempty" json:"visual_signature,omitempty"`
	PhilosophicalImplication string `yaml:"philosophical_implication,omitempty" json:"philosophical_implication,omitempty"`
}

// Intentionality is the full principle set with its core framing.
type Intentionality struct {
	CorePrinciple struct {
		Concept        string `yaml:"concept" json:"concept"`
		Explanation    string `yaml:"explanation" json:"explanation"`
		LevinFramework string `yaml:"levin_framework" json:"levin_framework"`
	} `yaml:"core_principle" json:"core_principle"`
	Principles map[string]Principle `yaml:"principles" json:"principles"`
}

// MovementRule is one row of the shape x cilia -> movement rule table.
type MovementRule struct {
	Shape    Shape        `yaml:"shape" json:"shape"`
	Cilia    CiliaPattern `yaml:"cilia" json:"cilia_pattern"`
	Movement MovementKind `yaml:"movement" json:"movement_type"`
	Reason   string       `yaml:"reason" json:"reason"`
}

// SizeBucket is one row of the size -> behavioral tendency table. Buckets are
// contiguous and non-overlapping; Max is inclusive, Min is inclusive only for
// the first bucket.
type SizeBucket struct {
	Bucket   string  `yaml:"bucket" json:"bucket"`
	Min      float64 `yaml:"min" json:"min"`
	Max      float64 `yaml:"max" json:"max"`
	Tendency string  `yaml:"tendency" json:"tendency"`
	Reason   string  `yaml:"reason" json:"reason"`
}

// Silhouette is the geometric rendering record for a morphotype.
type Silhouette struct {
	BaseShape   string  `yaml:"base_shape" json:"base_shape"`
	AspectRatio float64 `yaml:"aspect_ratio" json:"aspect_ratio"`
	Symmetry    string  `yaml:"symmetry" json:"symmetry"`
	Surface     string  `yaml:"surface" json:"surface"`
}

// CiliaRendering describes how one cilia pattern is drawn.
type CiliaRendering struct {
	Coverage  string `yaml:"coverage" json:"coverage"`
	Density   string `yaml:"density" json:"density"`
	Rendering string `yaml:"rendering" json:"rendering"`
}

// MovementRendering describes how movement is visualized in a still frame.
type MovementRendering struct {
	Technique string `yaml:"technique" json:"technique"`
	MotionCue string `yaml:"motion_cue" json:"motion_cue"`
}

// Behavior is a collective swarm behavior with its scene-level arrangement.
type Behavior struct {
	ID              BehaviorID `yaml:"-" json:"behavior"`
	Description     string     `yaml:"description" json:"description"`
	Arrangement     string     `yaml:"arrangement" json:"arrangement"`
	ArrangementNote string     `yaml:"arrangement_note" json:"arrangement_note"`
	Spacing         string     `yaml:"spacing" json:"spacing"`
	VisualSignature string     `yaml:"visual_signature" json:"visual_signature"`
}

// CompositionTarget describes a sibling taxonomy this one composes with.
type CompositionTarget struct {
	SharedStructure       []string          `yaml:"shared_structure" json:"shared_structure"`
	NaturalTransformation *struct {
		Source     string            `yaml:"source" json:"source"`
		Target     string            `yaml:"target" json:"target"`
		Components map[string]string `yaml:"components" json:"components"`
	} `yaml:"natural_transformation,omitempty" json:"natural_transformation,omitempty"`
	ConceptualBridge  map[string]string `yaml:"conceptual_bridge,omitempty" json:"conceptual_bridge,omitempty"`
	FunctionalMapping map[string]string `yaml:"functional_mapping,omitempty" json:"functional_mapping,omitempty"`
}

// Citations holds research attribution records.
type Citations struct {
	PrimarySource      string `yaml:"primary_source" json:"primary_source"`
	LifeCycleSource    string `yaml:"life_cycle_source" json:"life_cycle_source"`
	LevinPhilosophy    string `yaml:"levin_philosophy" json:"levin_philosophy"`
	EducationalGateway struct {
		Description string   `yaml:"description" json:"description"`
		Links       []string `yaml:"links" json:"links"`
	} `yaml:"educational_gateway" json:"educational_gateway"`
}
