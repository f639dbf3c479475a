package morphism

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anthrobot/internal/taxonomy"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(taxonomy.MustLoad())
}

func TestDeriveMovementKnownPairs(t *testing.T) {
	t.Parallel()
	e := newEngine(t)

	cases := []struct {
		shape taxonomy.Shape
		cilia taxonomy.CiliaPattern
		want  taxonomy.MovementKind
	}{
		{taxonomy.ShapeSpherical, taxonomy.CiliaFullyCiliated, taxonomy.MovementStationaryWiggler},
		{taxonomy.ShapePotatoShaped, taxonomy.CiliaPolarClustered, taxonomy.MovementCircularSwimmer},
		{taxonomy.ShapeEllipsoidal, taxonomy.CiliaDispersedPatches, taxonomy.MovementStraightSwimmer},
	}
	for _, tc := range cases {
		d, err := e.DeriveMovement(tc.shape, tc.cilia)
		require.NoError(t, err, "%s + %s", tc.shape, tc.cilia)
		assert.Equal(t, tc.want, d.MovementType)
		assert.Equal(t, tc.shape, d.Shape)
		assert.Equal(t, tc.cilia, d.CiliaPattern)
		assert.NotEmpty(t, d.PhysicalReason)
		assert.NotEmpty(t, d.Speed)
		assert.NotEmpty(t, d.Trajectory)
	}
}

func TestDeriveMovementIsDeterministic(t *testing.T) {
	t.Parallel()
	e := newEngine(t)

	a, err := e.DeriveMovement(taxonomy.ShapeSpherical, taxonomy.CiliaFullyCiliated)
	require.NoError(t, err)
	b, err := e.DeriveMovement(taxonomy.ShapeSpherical, taxonomy.CiliaFullyCiliated)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDeriveMovementUnmappedCombination(t *testing.T) {
	t.Parallel()
	e := newEngine(t)

	_, err := e.DeriveMovement(taxonomy.ShapeSpherical, taxonomy.CiliaPolarClustered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnmappedCombination))

	var uc *UnmappedCombinationError
	require.True(t, errors.As(err, &uc))
	assert.Equal(t, taxonomy.ShapeSpherical, uc.Shape)
	assert.Equal(t, taxonomy.CiliaPolarClustered, uc.Cilia)
}

func TestSpecification(t *testing.T) {
	t.Parallel()
	e := newEngine(t)

	spec, err := e.Specification(taxonomy.Morphotype2)
	require.NoError(t, err)
	assert.Equal(t, "Asymmetric Circler", spec.Name)
	assert.Equal(t, taxonomy.ShapePotatoShaped, spec.Shape)
	assert.Equal(t, taxonomy.MovementCircularSwimmer, spec.TypicalMovement.Kind)
	assert.NotEmpty(t, spec.Silhouette.BaseShape)
	assert.Contains(t, spec.VisualIdentity, spec.Name)
}

func TestSpecificationUnknownMorphotype(t *testing.T) {
	t.Parallel()
	e := newEngine(t)

	_, err := e.Specification("morphotype_0")
	assert.True(t, errors.Is(err, taxonomy.ErrNotFound))
}

func TestDeriveSizeEffectBuckets(t *testing.T) {
	t.Parallel()
	e := newEngine(t)

	cases := []struct {
		size float64
		want string
	}{
		{30, "small"},
		{65, "small"},
		{100, "small"}, // upper bound inclusive
		{100.1, "medium"},
		{150, "medium"},
		{300, "medium"},
		{300.1, "large"},
		{450, "large"},
		{500, "large"},
	}
	for _, tc := range cases {
		effect, err := e.DeriveSizeEffect(tc.size)
		require.NoError(t, err, "size %g", tc.size)
		assert.Equal(t, tc.want, effect.Category, "size %g", tc.size)
		assert.NotEmpty(t, effect.Tendency)
		assert.NotEmpty(t, effect.PhysicalReason)
	}
}

func TestDeriveSizeEffectOutOfRange(t *testing.T) {
	t.Parallel()
	e := newEngine(t)

	for _, size := range []float64{29.9, 500.1, 0, -10, 10000} {
		_, err := e.DeriveSizeEffect(size)
		require.Error(t, err, "size %g", size)
		assert.True(t, errors.Is(err, ErrOutOfRange), "size %g", size)

		var re *RangeError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, "size_micrometers", re.Field)
		assert.Equal(t, size, re.Value)
		assert.Equal(t, taxonomy.SizeMin, re.Min)
		assert.Equal(t, taxonomy.SizeMax, re.Max)
	}
}

func TestScaleReferenceThresholds(t *testing.T) {
	t.Parallel()
	e := newEngine(t)

	cases := []struct {
		size float64
		want string
	}{
		{40, "Smaller than a human hair diameter (70um)"},
		{70, "About human hair thickness"},
		{99, "About human hair thickness"},
		{100, "2-4x human hair thickness"},
		{299, "2-4x human hair thickness"},
		{300, "Visible as a small dot to the naked eye"},
		{500, "Visible as a small dot to the naked eye"},
	}
	for _, tc := range cases {
		effect, err := e.DeriveSizeEffect(tc.size)
		require.NoError(t, err)
		assert.Equal(t, tc.want, effect.ScaleReference, "size %g", tc.size)
	}
}
