package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat3FromMat4StripsTranslation(t *testing.T) {
	m, err := Transform3{
		Translation: NewVec3(5, 6, 7),
		Rotation:    NewQuatFromAxisAngle(NewVec3Up(), DegToRad(30)),
		Scale:       NewVec3(2, 2, 2),
		Order:       OrderTRS,
	}.Compose(nil)
	require.NoError(t, err)

	m3 := NewMat3FromMat4(*m)
	back := m3.ToMat4()

	// The linear part survives, the translation does not.
	tolAssertVec3(t, NewVec3Zero(), back.GetTranslation(), testTol)
	tolAssertVec3(t, m.TransformDirection(NewVec3(1, 0, 0)), back.TransformDirection(NewVec3(1, 0, 0)), testTol)
	tolAssertVec3(t, m.TransformDirection(NewVec3(0, 1, 1)), back.TransformDirection(NewVec3(0, 1, 1)), testTol)
}

func TestMat3ToMat4Homogeneous(t *testing.T) {
	m4 := NewMat3Identity().ToMat4()
	assert.Equal(t, NewMat4Identity(), m4)
}

func TestMat3InverseMul(t *testing.T) {
	m3 := NewMat3FromMat4(NewMat4FromRotation(NewQuatFromAxisAngle(NewVec3(1, 1, 0), DegToRad(42))))
	id := m3.Mul(m3.Inverse())
	assert.True(t, id.Equals(NewMat3Identity()))
}

func TestMat2x3ToMat4Embedding(t *testing.T) {
	t2 := Transform2{
		Translation: NewVec2(3, -2),
		Rotation:    DegToRad(40),
		Scale:       NewVec2(2, 0.5),
		Order:       OrderTRS,
	}
	m2, err := t2.Compose(nil)
	require.NoError(t, err)

	m4 := m2.ToMat4()

	// z stays untouched: translation 0, scale 1.
	tr := m4.GetTranslation()
	assert.InDelta(t, 3, tr.X, testTol)
	assert.InDelta(t, -2, tr.Y, testTol)
	assert.InDelta(t, 0, tr.Z, testTol)
	assert.InDelta(t, 1, m4.GetScale().Z, testTol)

	// Points in the plane transform identically through both ranks.
	for _, p := range []Vec2{{1, 0}, {0, 1}, {-2, 3}} {
		p2 := m2.TransformPoint(p)
		p3 := m4.TransformPoint(NewVec3(p.X, p.Y, 0))
		assert.InDelta(t, p2.X, p3.X, testTol)
		assert.InDelta(t, p2.Y, p3.Y, testTol)
		assert.InDelta(t, 0, p3.Z, testTol)
	}
}
