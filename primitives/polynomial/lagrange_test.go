package polynomial

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliseuv/algebra/primitives/field"
)

func TestInterpolateKnownParabola(t *testing.T) {
	require := require.New(t)
	f := newF17(t)

	// y = x^2 + 1 through (0,1), (1,2), (2,5).
	points := []Point[field.Element]{
		{X: f.NewElement(0), Y: f.NewElement(1)},
		{X: f.NewElement(1), Y: f.NewElement(2)},
		{X: f.NewElement(2), Y: f.NewElement(5)},
	}

	p, err := Interpolate(points)
	require.NoError(err)
	assert.True(t, p.Equal(poly17(t, 1, 0, 1)))

	y, err := p.Evaluate(f.NewElement(3))
	require.NoError(err)
	assert.Equal(t, uint64(10), y.Uint64())
}

func TestInterpolateSinglePoint(t *testing.T) {
	require := require.New(t)
	f := newF17(t)

	p, err := Interpolate([]Point[field.Element]{{X: f.NewElement(4), Y: f.NewElement(9)}})
	require.NoError(err)
	assert.Equal(t, 0, p.Degree())
	assert.Equal(t, uint64(9), p.Constant().Uint64())
}

func TestInterpolateRoundTrip(t *testing.T) {
	require := require.New(t)

	f, err := field.NewField(2147483647)
	require.NoError(err)

	for _, degree := range []int{0, 1, 2, 5, 10} {
		coeffs := make([]field.Element, degree+1)
		for i := range coeffs {
			coeffs[i], err = f.RandomElement(rand.Reader)
			require.NoError(err)
		}
		// Force exact degree so the recovered polynomial compares cleanly.
		if degree > 0 {
			coeffs[degree] = f.One()
		}
		original, err := New(coeffs)
		require.NoError(err)

		points := make([]Point[field.Element], degree+1)
		for i := range points {
			x := f.NewElement(uint64(i + 1))
			y, err := original.Evaluate(x)
			require.NoError(err)
			points[i] = Point[field.Element]{X: x, Y: y}
		}

		recovered, err := Interpolate(points)
		require.NoError(err)
		assert.True(t, recovered.Equal(original), "degree %d", degree)
	}
}

func TestEvaluateAtAgreesWithInterpolate(t *testing.T) {
	require := require.New(t)

	f, err := field.NewField(2147483647)
	require.NoError(err)

	points := make([]Point[field.Element], 6)
	for i := range points {
		y, err := f.RandomElement(rand.Reader)
		require.NoError(err)
		points[i] = Point[field.Element]{X: f.NewElement(uint64(2*i + 1)), Y: y}
	}

	p, err := Interpolate(points)
	require.NoError(err)

	for _, x := range []uint64{0, 7, 100, 2147483646} {
		ex := f.NewElement(x)

		direct, err := EvaluateAt(points, ex)
		require.NoError(err)

		viaPoly, err := p.Evaluate(ex)
		require.NoError(err)

		assert.True(t, direct.Equal(viaPoly), "x=%d", x)
	}
}

func TestInterpolateDuplicatePoint(t *testing.T) {
	f := newF17(t)

	points := []Point[field.Element]{
		{X: f.NewElement(1), Y: f.NewElement(2)},
		{X: f.NewElement(3), Y: f.NewElement(4)},
		{X: f.NewElement(1), Y: f.NewElement(5)},
	}

	_, err := Interpolate(points)
	assert.ErrorIs(t, err, ErrDuplicatePoint)

	_, err = EvaluateAt(points, f.Zero())
	assert.ErrorIs(t, err, ErrDuplicatePoint)
}

func TestInterpolateNoPoints(t *testing.T) {
	f := newF17(t)

	_, err := Interpolate([]Point[field.Element]{})
	assert.ErrorIs(t, err, ErrNoPoints)

	_, err = EvaluateAt([]Point[field.Element]{}, f.Zero())
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestWeightsSumToOne(t *testing.T) {
	require := require.New(t)
	f := newF17(t)

	// Lagrange weights for any target point form a partition of unity.
	xs := []field.Element{f.NewElement(1), f.NewElement(2), f.NewElement(5), f.NewElement(11)}
	lambdas, err := Weights(xs, f.Zero())
	require.NoError(err)

	sum := f.Zero()
	for _, l := range lambdas {
		sum, err = sum.Add(l)
		require.NoError(err)
	}
	assert.Equal(t, uint64(1), sum.Uint64())
}

func BenchmarkInterpolate(b *testing.B) {
	f, _ := field.NewField(2147483647)

	points := make([]Point[field.Element], 16)
	for i := range points {
		points[i] = Point[field.Element]{
			X: f.NewElement(uint64(i + 1)),
			Y: f.NewElement(uint64(i*i + 7)),
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Interpolate(points)
	}
}

func BenchmarkEvaluateAt(b *testing.B) {
	f, _ := field.NewField(2147483647)

	points := make([]Point[field.Element], 16)
	for i := range points {
		points[i] = Point[field.Element]{
			X: f.NewElement(uint64(i + 1)),
			Y: f.NewElement(uint64(i*i + 7)),
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = EvaluateAt(points, f.Zero())
	}
}
