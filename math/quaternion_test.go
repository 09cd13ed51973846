package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuatIdentity(t *testing.T) {
	q := NewQuatIdentity()
	assert.Equal(t, Quaternion{0, 0, 0, 1}, q)
	v := NewVec3(1, 2, 3)
	tolAssertVec3(t, v, q.Rotate(v), testTol)
}

func TestQuatAxisAngleRoundTrip(t *testing.T) {
	axis := NewVec3(1, 2, -1).Normalize()
	angle := DegToRad(70)
	q := NewQuatFromAxisAngle(axis, angle)

	gotAxis, gotAngle := q.ToAxisAngle()
	tolAssertVec3(t, axis, gotAxis, testTol)
	assert.InDelta(t, angle, gotAngle, testTol)
}

func TestQuatAxisAngleIdentity(t *testing.T) {
	axis, angle := NewQuatIdentity().ToAxisAngle()
	tolAssertVec3(t, NewVec3Up(), axis, testTol)
	assert.InDelta(t, 0, angle, testTol)
}

func TestQuatRotate(t *testing.T) {
	// 90 degrees about Y carries +X to -Z.
	q := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(90))
	tolAssertVec3(t, NewVec3(0, 0, -1), q.Rotate(NewVec3Right()), testTol)
}

func TestQuatMulComposes(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(45))
	b := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(45))
	combined := a.Mul(b)
	expected := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(90))
	assert.True(t, expected.Compare(combined, testTol))
}

func TestQuatEulerOrders(t *testing.T) {
	angles := NewVec3(DegToRad(10), DegToRad(20), DegToRad(30))
	orders := []EulerOrder{EulerXYZ, EulerXZY, EulerYXZ, EulerYZX, EulerZXY, EulerZYX}
	for _, order := range orders {
		q := NewQuatFromEuler(angles, order)
		assert.True(t, q.IsValid(), "order %d", order)
		assert.InDelta(t, 1.0, q.Length(), testTol, "order %d produced a non-unit quaternion", order)
	}
	// Different orders give different rotations for non-trivial angles.
	xyz := NewQuatFromEuler(angles, EulerXYZ)
	zyx := NewQuatFromEuler(angles, EulerZYX)
	assert.False(t, xyz.Compare(zyx, testTol))
}

func TestQuatEulerSingleAxis(t *testing.T) {
	// All orders agree when only one axis carries an angle.
	angles := NewVec3(0, DegToRad(40), 0)
	expected := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(40))
	orders := []EulerOrder{EulerXYZ, EulerXZY, EulerYXZ, EulerYZX, EulerZXY, EulerZYX}
	for _, order := range orders {
		assert.True(t, expected.Compare(NewQuatFromEuler(angles, order), testTol), "order %d", order)
	}
}

func TestQuatRotationFromTo(t *testing.T) {
	from := NewVec3Right()
	to := NewVec3Up()
	q := NewQuatRotationFromTo(from, to)
	tolAssertVec3(t, to, q.Rotate(from), testTol)
}

func TestQuatSlerpEndpointsAndMidpoint(t *testing.T) {
	a := NewQuatIdentity()
	b := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(90))

	assert.True(t, a.Compare(a.Slerp(b, 0), testTol))
	assert.True(t, b.Compare(a.Slerp(b, 1), testTol))

	mid := a.Slerp(b, 0.5)
	expected := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(45))
	assert.True(t, expected.Compare(mid, testTol))
}

func TestQuatSlerpShortestArc(t *testing.T) {
	// Negating one endpoint must not send the blend the long way around.
	a := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(10))
	b := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(50))
	bNeg := Quaternion{-b.X, -b.Y, -b.Z, -b.W}

	mid := a.Slerp(bNeg, 0.5)
	expected := NewQuatFromAxisAngle(NewVec3Up(), DegToRad(30))
	assert.True(t, expected.Compare(mid, testTol))
}

func TestQuatCompareSignInsensitive(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(1, 0.5, 0.25), DegToRad(77))
	neg := Quaternion{-q.X, -q.Y, -q.Z, -q.W}
	assert.True(t, q.Compare(neg, testTol))
}

func TestQuatNormalizeDenormalized(t *testing.T) {
	q := Quaternion{0, 0, 0, 4}
	n := q.Normalize()
	assert.InDelta(t, 1.0, n.Length(), testTol)
	assert.True(t, NewQuatIdentity().Compare(n, testTol))
}

func TestQuatInverseUndoesRotation(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(0.2, 1, 0.4), DegToRad(63))
	v := NewVec3(3, -2, 5)
	tolAssertVec3(t, v, q.Inverse().Rotate(q.Rotate(v)), testTol)
}
