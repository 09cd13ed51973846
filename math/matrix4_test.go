package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/core"
)

const testTol = 1e-3

func tolAssertVec3(t *testing.T, expected, actual Vec3, tol float32) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, float64(tol))
	assert.InDelta(t, expected.Y, actual.Y, float64(tol))
	assert.InDelta(t, expected.Z, actual.Z, float64(tol))
}

func allOrders() []TransformOrder {
	return []TransformOrder{OrderTRS, OrderTSR, OrderRTS, OrderRST, OrderSTR, OrderSRT}
}

func TestComposeIdentity(t *testing.T) {
	out, err := NewTransform3().Compose(nil)
	require.NoError(t, err)
	assert.Equal(t, NewMat4Identity(), *out)
}

func TestComposeUnknownOrder(t *testing.T) {
	tr := NewTransform3()
	tr.Order = TransformOrder(42)
	out, err := tr.Compose(nil)
	assert.Nil(t, out)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownOrder)
}

func TestComposeDecomposeRoundTripTRS(t *testing.T) {
	tr := Transform3{
		Translation: NewVec3(1, -2, 3),
		Rotation:    NewQuatFromAxisAngle(NewVec3(1, 2, 3), DegToRad(40)),
		Scale:       NewVec3(2, 0.5, 3),
		Order:       OrderTRS,
	}
	m, err := tr.Compose(nil)
	require.NoError(t, err)

	var got Transform3
	m.Decompose(&got)

	assert.Equal(t, OrderTRS, got.Order)
	tolAssertVec3(t, tr.Translation, got.Translation, testTol)
	tolAssertVec3(t, tr.Scale, got.Scale, testTol)
	assert.True(t, tr.Rotation.Compare(got.Rotation, testTol),
		"rotation %+v != %+v", tr.Rotation, got.Rotation)

	// Recompose must reproduce the matrix coefficient for coefficient.
	back, err := got.Compose(nil)
	require.NoError(t, err)
	assert.True(t, m.Equals(*back))
}

func TestComposeDecomposeRoundTripAllOrders(t *testing.T) {
	// Uniform scale keeps the basis columns orthogonal no matter where the
	// scale lands in the sequence, so the matrix round-trips exactly for
	// every order even though decompose always reports TRS.
	for _, order := range allOrders() {
		tr := Transform3{
			Translation: NewVec3(4, 5, -6),
			Rotation:    NewQuatFromAxisAngle(NewVec3(0.3, 1, -0.2), DegToRad(72)),
			Scale:       NewVec3(2, 2, 2),
			Order:       order,
		}
		m, err := tr.Compose(nil)
		require.NoError(t, err, "order %s", order)

		var got Transform3
		m.Decompose(&got)
		assert.Equal(t, OrderTRS, got.Order, "order %s", order)

		back, err := got.Compose(nil)
		require.NoError(t, err, "order %s", order)
		assert.True(t, m.Equals(*back), "order %s: recomposed matrix differs", order)
	}
}

func TestComposeOrdersDiffer(t *testing.T) {
	// Regression: TRS and SRT with the same fields must agree on neither
	// coefficients nor decomposed transform.
	base := Transform3{
		Translation: NewVec3(1, 0, 0),
		Rotation:    NewQuatFromAxisAngle(NewVec3Up(), DegToRad(90)),
		Scale:       NewVec3(2, 1, 1),
	}
	trs := base
	trs.Order = OrderTRS
	srt := base
	srt.Order = OrderSRT

	a, err := trs.Compose(nil)
	require.NoError(t, err)
	b, err := srt.Compose(nil)
	require.NoError(t, err)

	assert.False(t, a.Equals(*b))
	assert.False(t, TransformEqualsMat4(*a, *b))
}

func TestComposeOrderIrrelevantForIdentityRotation(t *testing.T) {
	// With identity rotation and uniform scale the order stops mattering
	// for the represented transform.
	base := Transform3{
		Translation: NewVec3(3, 4, 5),
		Rotation:    NewQuatIdentity(),
		Scale:       NewVec3(2, 2, 2),
	}
	trs := base
	trs.Order = OrderTRS
	rts := base
	rts.Order = OrderRTS

	a, err := trs.Compose(nil)
	require.NoError(t, err)
	b, err := rts.Compose(nil)
	require.NoError(t, err)
	assert.True(t, TransformEqualsMat4(*a, *b))
}

func TestComposeOutAliasing(t *testing.T) {
	// out may alias a matrix the caller is still reading from.
	tr := Transform3{
		Translation: NewVec3(1, 2, 3),
		Rotation:    NewQuatFromAxisAngle(NewVec3Up(), DegToRad(30)),
		Scale:       NewVec3One(),
		Order:       OrderTRS,
	}
	expected, err := tr.Compose(nil)
	require.NoError(t, err)

	m := NewMat4FromTranslation(NewVec3(9, 9, 9))
	got, err := tr.Compose(&m)
	require.NoError(t, err)
	assert.Same(t, &m, got)
	assert.True(t, expected.Equals(m))
}

func TestLerpEndpoints(t *testing.T) {
	a, err := Transform3{
		Translation: NewVec3(-1, 2, 0),
		Rotation:    NewQuatFromAxisAngle(NewVec3(1, 1, 0), DegToRad(25)),
		Scale:       NewVec3(1, 2, 3),
		Order:       OrderTRS,
	}.Compose(nil)
	require.NoError(t, err)
	b, err := Transform3{
		Translation: NewVec3(5, 0, -4),
		Rotation:    NewQuatFromAxisAngle(NewVec3(0, 1, 1), DegToRad(140)),
		Scale:       NewVec3(2, 2, 2),
		Order:       OrderTRS,
	}.Compose(nil)
	require.NoError(t, err)

	var out Mat4
	LerpMat4(*a, *b, 0, &out)
	assert.True(t, TransformEqualsMat4(*a, out))

	LerpMat4(*a, *b, 1, &out)
	assert.True(t, TransformEqualsMat4(*b, out))
}

func TestLerpMidpoint(t *testing.T) {
	a := NewMat4Identity()
	b, err := Transform3{
		Translation: NewVec3(10, 0, 0),
		Rotation:    NewQuatFromAxisAngle(NewVec3Up(), DegToRad(90)),
		Scale:       NewVec3(2, 2, 2),
		Order:       OrderTRS,
	}.Compose(nil)
	require.NoError(t, err)

	var mid Mat4
	LerpMat4(a, *b, 0.5, &mid)

	var tr Transform3
	mid.Decompose(&tr)
	tolAssertVec3(t, NewVec3(5, 0, 0), tr.Translation, testTol)
	tolAssertVec3(t, NewVec3(1.5, 1.5, 1.5), tr.Scale, testTol)

	axis, angle := tr.Rotation.ToAxisAngle()
	tolAssertVec3(t, NewVec3Up(), axis, testTol)
	assert.InDelta(t, DegToRad(45), angle, testTol)
}

func TestEqualsVersusTransformEquals(t *testing.T) {
	tr := Transform3{
		Translation: NewVec3(1, 2, 3),
		Rotation:    NewQuatFromAxisAngle(NewVec3(0, 1, 0), DegToRad(33)),
		Scale:       NewVec3(1.5, 1.5, 1.5),
		Order:       OrderTRS,
	}
	m, err := tr.Compose(nil)
	require.NoError(t, err)

	assert.True(t, m.Equals(*m))
	assert.True(t, TransformEqualsMat4(*m, *m))

	shifted := *m
	shifted.Data[12] += 0.01
	assert.False(t, m.Equals(shifted))
	assert.False(t, TransformEqualsMat4(*m, shifted))
}

func TestSetRotationPreservesTranslationAndScale(t *testing.T) {
	m, err := Transform3{
		Translation: NewVec3(1, 2, 3),
		Rotation:    NewQuatFromAxisAngle(NewVec3Up(), DegToRad(10)),
		Scale:       NewVec3(2, 3, 4),
		Order:       OrderTRS,
	}.Compose(nil)
	require.NoError(t, err)

	q := NewQuatFromAxisAngle(NewVec3Right(), DegToRad(65))
	m.SetRotation(q)

	tolAssertVec3(t, NewVec3(1, 2, 3), m.GetTranslation(), testTol)
	tolAssertVec3(t, NewVec3(2, 3, 4), m.GetScale(), testTol)
	assert.True(t, q.Compare(m.GetRotation(), testTol))
}

func TestMat4BasisVectors(t *testing.T) {
	id := NewMat4Identity()
	tolAssertVec3(t, NewVec3Forward(), id.Forward(), testTol)
	tolAssertVec3(t, NewVec3Up(), id.Up(), testTol)
	tolAssertVec3(t, NewVec3Right(), id.Right(), testTol)
}

func TestMat4TransformPoint(t *testing.T) {
	m, err := Transform3{
		Translation: NewVec3(1, 1, 1),
		Rotation:    NewQuatFromAxisAngle(NewVec3Up(), DegToRad(90)),
		Scale:       NewVec3(2, 2, 2),
		Order:       OrderTRS,
	}.Compose(nil)
	require.NoError(t, err)

	// (1,0,0) scaled to (2,0,0), rotated 90 about Y to (0,0,-2), then
	// translated by (1,1,1).
	tolAssertVec3(t, NewVec3(1, 1, -1), m.TransformPoint(NewVec3(1, 0, 0)), testTol)
	// Directions ignore translation.
	tolAssertVec3(t, NewVec3(0, 0, -2), m.TransformDirection(NewVec3(1, 0, 0)), testTol)
}

func TestMat4IsValid(t *testing.T) {
	m := NewMat4Identity()
	assert.True(t, m.IsValid())
	m.Data[5] = math32.NaN()
	assert.False(t, m.IsValid())
}
