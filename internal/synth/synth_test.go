package synth

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anthrobot/internal/taxonomy"
)

func newSynthesizer(t *testing.T) *Synthesizer {
	t.Helper()
	return NewSynthesizer(taxonomy.MustLoad())
}

func TestSynthesizeMatureSphericalWiggler(t *testing.T) {
	t.Parallel()
	s := newSynthesizer(t)

	b, err := s.Synthesize(taxonomy.Morphotype1, 150, taxonomy.StageMature, taxonomy.StyleScientific)
	require.NoError(t, err)

	assert.Equal(t, taxonomy.Morphotype1, b.Specifications.Morphotype)
	assert.Equal(t, "Spherical Wiggler", b.Specifications.Name)
	assert.Equal(t, 150.0, b.Specifications.SizeMicrometers)

	assert.Equal(t, CoronaFull, b.CiliaCorona.Coverage)
	assert.NotEmpty(t, b.CiliaCorona.Rendering.Coverage, "mature corona must carry its rendering")

	assert.Equal(t, taxonomy.MovementStationaryWiggler, b.MovementSignature.MovementType)
	assert.Contains(t, strings.ToLower(b.MovementSignature.Explanation), "radial symmetry")
	assert.Equal(t, "static_image", b.MovementSignature.Rendering.Technique)

	assert.Equal(t, "medium", b.ScaleContext.Category)
	assert.Equal(t, taxonomy.StyleScientific, b.ImagingAesthetics.Style)
	assert.NotEmpty(t, b.SynthesisInstructions)
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	t.Parallel()
	s := newSynthesizer(t)

	a, err := s.Synthesize(taxonomy.Morphotype3, 220, taxonomy.StageEversion, taxonomy.StyleArtistic)
	require.NoError(t, err)
	b, err := s.Synthesize(taxonomy.Morphotype3, 220, taxonomy.StageEversion, taxonomy.StyleArtistic)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("bundles differ (-first +second):\n%s", diff)
	}
}

func TestSynthesizeValidationOrder(t *testing.T) {
	t.Parallel()
	s := newSynthesizer(t)

	// All four inputs invalid: the morphotype violation must win.
	_, err := s.Synthesize("morphotype_x", 9999, "larva", "watercolor")
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "morphotype", ve.Field)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestSynthesizeValidationFields(t *testing.T) {
	t.Parallel()
	s := newSynthesizer(t)

	cases := []struct {
		name       string
		morphotype taxonomy.MorphotypeID
		size       float64
		stage      taxonomy.StageID
		style      taxonomy.StyleID
		wantField  string
	}{
		{"bad morphotype", "morphotype_x", 150, taxonomy.StageMature, taxonomy.StyleScientific, "morphotype"},
		{"size too small", taxonomy.Morphotype1, 29, taxonomy.StageMature, taxonomy.StyleScientific, "size_micrometers"},
		{"size too large", taxonomy.Morphotype1, 501, taxonomy.StageMature, taxonomy.StyleScientific, "size_micrometers"},
		{"bad stage", taxonomy.Morphotype1, 150, "larva", taxonomy.StyleScientific, "life_stage"},
		{"bad style", taxonomy.Morphotype1, 150, taxonomy.StageMature, "watercolor", "imaging_style"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := s.Synthesize(tc.morphotype, tc.size, tc.stage, tc.style)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.wantField, ve.Field)
			assert.NotEmpty(t, ve.Domain)
		})
	}
}

func TestCoronaGatingByStage(t *testing.T) {
	t.Parallel()
	s := newSynthesizer(t)

	cases := []struct {
		stage         taxonomy.StageID
		want          CoronaState
		withRendering bool
	}{
		{taxonomy.StageProgenitor, CoronaNone, false},
		{taxonomy.StageEarlySpheroid, CoronaInternal, false},
		{taxonomy.StageEversion, CoronaEmerging, true},
		{taxonomy.StageMature, CoronaFull, true},
		{taxonomy.StageSenescent, CoronaDegraded, true},
	}
	for _, tc := range cases {
		b, err := s.Synthesize(taxonomy.Morphotype1, 150, tc.stage, taxonomy.StyleScientific)
		require.NoError(t, err, "stage %s", tc.stage)
		assert.Equal(t, tc.want, b.CiliaCorona.Coverage, "stage %s", tc.stage)
		if tc.withRendering {
			assert.NotEmpty(t, b.CiliaCorona.Rendering.Coverage, "stage %s", tc.stage)
		} else {
			assert.Empty(t, b.CiliaCorona.Rendering.Coverage, "stage %s should withhold rendering", tc.stage)
		}
		assert.NotEmpty(t, b.CiliaCorona.Note)
	}
}

func TestMovementRenderingByMorphotype(t *testing.T) {
	t.Parallel()
	s := newSynthesizer(t)

	cases := []struct {
		morphotype taxonomy.MorphotypeID
		want       string
	}{
		{taxonomy.Morphotype1, "static_image"},
		{taxonomy.Morphotype2, "trajectory_traces"},
		{taxonomy.Morphotype3, "trajectory_traces"},
	}
	for _, tc := range cases {
		b, err := s.Synthesize(tc.morphotype, 150, taxonomy.StageMature, taxonomy.StyleScientific)
		require.NoError(t, err)
		rendering, err := s.Store().MovementRendering(tc.want)
		require.NoError(t, err)
		assert.Equal(t, rendering, b.MovementSignature.Rendering, "morphotype %s", tc.morphotype)
	}
}

func TestInstructionsReflectBundle(t *testing.T) {
	t.Parallel()
	s := newSynthesizer(t)

	b, err := s.Synthesize(taxonomy.Morphotype2, 90, taxonomy.StageMature, taxonomy.StyleDepthMap)
	require.NoError(t, err)

	assert.Contains(t, b.SynthesisInstructions, "Asymmetric Circler")
	assert.Contains(t, b.SynthesisInstructions, "90 micrometers")
	assert.Contains(t, b.SynthesisInstructions, "mature")
	assert.Contains(t, b.SynthesisInstructions, "depth_map")
}

func TestSizeBoundariesAreSynthesizable(t *testing.T) {
	t.Parallel()
	s := newSynthesizer(t)

	for _, size := range []float64{taxonomy.SizeMin, taxonomy.SizeMax} {
		_, err := s.Synthesize(taxonomy.Morphotype1, size, taxonomy.StageMature, taxonomy.StyleScientific)
		assert.NoError(t, err, "size %g", size)
	}
}
