package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

/**
 * @brief Creates and returns an identity quaternion (0, 0, 0, 1).
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0.0, 0.0, 0.0, 1.0}
}

func NewQuat(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

/**
 * @brief Creates and returns a quaternion representing a rotation of
 * angle radians about the provided axis. The axis need not be normalized.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	return NewQuatFromMgl(mgl32.QuatRotate(angle, axis.ToMgl().Normalize()))
}

// NewQuatFromEuler converts Euler angles (radians, one per axis) into a
// quaternion, applying the axes in the given order.
func NewQuatFromEuler(angles Vec3, order EulerOrder) Quaternion {
	var a1, a2, a3 float32
	var ro mgl32.RotationOrder
	switch order {
	case EulerXYZ:
		a1, a2, a3, ro = angles.X, angles.Y, angles.Z, mgl32.XYZ
	case EulerXZY:
		a1, a2, a3, ro = angles.X, angles.Z, angles.Y, mgl32.XZY
	case EulerYXZ:
		a1, a2, a3, ro = angles.Y, angles.X, angles.Z, mgl32.YXZ
	case EulerYZX:
		a1, a2, a3, ro = angles.Y, angles.Z, angles.X, mgl32.YZX
	case EulerZXY:
		a1, a2, a3, ro = angles.Z, angles.X, angles.Y, mgl32.ZXY
	default:
		a1, a2, a3, ro = angles.Z, angles.Y, angles.X, mgl32.ZYX
	}
	return NewQuatFromMgl(mgl32.AnglesToQuat(a1, a2, a3, ro))
}

/**
 * @brief Creates and returns the shortest-arc rotation carrying the `from`
 * direction onto the `to` direction.
 */
func NewQuatRotationFromTo(from, to Vec3) Quaternion {
	return NewQuatFromMgl(mgl32.QuatBetweenVectors(from.ToMgl(), to.ToMgl()))
}

// NewQuatFromArray reads four components from array starting at offset.
func NewQuatFromArray(array []float32, offset int) Quaternion {
	return Quaternion{array[offset], array[offset+1], array[offset+2], array[offset+3]}
}

func (q Quaternion) Mul(other Quaternion) Quaternion {
	return NewQuatFromMgl(q.ToMgl().Mul(other.ToMgl()))
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

func (q Quaternion) Inverse() Quaternion {
	return NewQuatFromMgl(q.ToMgl().Inverse())
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

func (q Quaternion) Length() float32 {
	return math32.Sqrt(q.Dot(q))
}

/**
 * @brief Returns a normalized copy of the quaternion. Operations that can
 * denormalize (repeated multiplication, decomposition from a scaled matrix)
 * require an explicit call; nothing renormalizes implicitly.
 */
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l <= K_FLOAT_EPSILON {
		return NewQuatIdentity()
	}
	return Quaternion{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

/**
 * @brief Spherical interpolation towards other along the shortest arc.
 * Percentage is not clamped.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	a := q.ToMgl()
	b := other.ToMgl()
	// QuatSlerp takes the arc as given; flip one endpoint when the dot is
	// negative so interpolation runs the short way around.
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return NewQuatFromMgl(mgl32.QuatSlerp(a, b, percentage))
}

// Rotate applies the rotation to a vector.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	return NewVec3FromMgl(q.ToMgl().Rotate(v.ToMgl()))
}

// ToMat4 converts the rotation to a 4x4 matrix. The quaternion is expected
// to be unit length.
func (q Quaternion) ToMat4() Mat4 {
	return NewMat4FromMgl(q.ToMgl().Mat4())
}

/**
 * @brief Extracts the axis and angle (radians) of the rotation. The identity
 * rotation reports the up axis with a zero angle.
 */
func (q Quaternion) ToAxisAngle() (Vec3, float32) {
	n := q.Normalize()
	angle := 2.0 * math32.Acos(Clamp(n.W, -1.0, 1.0))
	s := math32.Sqrt(1.0 - n.W*n.W)
	if s <= K_FLOAT_EPSILON {
		return NewVec3Up(), 0.0
	}
	return Vec3{n.X / s, n.Y / s, n.Z / s}, angle
}

/**
 * @brief Compares the two rotations within tolerance. q and -q encode the
 * same rotation and are judged equal.
 */
func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	direct := FloatEqual(q.X, other.X, tolerance) &&
		FloatEqual(q.Y, other.Y, tolerance) &&
		FloatEqual(q.Z, other.Z, tolerance) &&
		FloatEqual(q.W, other.W, tolerance)
	if direct {
		return true
	}
	return FloatEqual(q.X, -other.X, tolerance) &&
		FloatEqual(q.Y, -other.Y, tolerance) &&
		FloatEqual(q.Z, -other.Z, tolerance) &&
		FloatEqual(q.W, -other.W, tolerance)
}

// IsValid reports whether no component is NaN or infinite.
func (q Quaternion) IsValid() bool {
	return IsFinite(q.X) && IsFinite(q.Y) && IsFinite(q.Z) && IsFinite(q.W)
}

// ToArray copies the components to array starting at offset.
func (q Quaternion) ToArray(array []float32, offset int) {
	array[offset] = q.X
	array[offset+1] = q.Y
	array[offset+2] = q.Z
	array[offset+3] = q.W
}

func (q Quaternion) ToMgl() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func NewQuatFromMgl(q mgl32.Quat) Quaternion {
	return Quaternion{q.V.X(), q.V.Y(), q.V.Z(), q.W}
}
