package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

/**
 * @brief Creates and returns an identity 3x3 matrix.
 */
func NewMat3Identity() Mat3 {
	return NewMat3FromMgl(mgl32.Ident3())
}

/**
 * @brief Creates and returns a 3x3 matrix with all elements set to 0.0f.
 */
func NewMat3Zero() Mat3 {
	return Mat3{}
}

/**
 * @brief Extracts the upper-left 3x3 block of a 4x4 matrix, stripping the
 * translation and the homogeneous row. Useful to recover a pure linear map,
 * e.g. for normal-matrix style usage.
 */
func NewMat3FromMat4(m Mat4) Mat3 {
	return NewMat3FromMgl(m.ToMgl().Mat3())
}

// NewMat3FromArray reads nine column-major coefficients from array starting
// at offset.
func NewMat3FromArray(array []float32, offset int) Mat3 {
	m := Mat3{}
	copy(m.Data[:], array[offset:offset+9])
	return m
}

/**
 * @brief Re-embeds the 3x3 into a 4x4 with zero translation and an implicit
 * homogeneous row (0, 0, 0, 1).
 */
func (m Mat3) ToMat4() Mat4 {
	return NewMat4FromMgl(m.ToMgl().Mat4())
}

func (m Mat3) Mul(other Mat3) Mat3 {
	return NewMat3FromMgl(m.ToMgl().Mul3(other.ToMgl()))
}

func (m Mat3) Transpose() Mat3 {
	return NewMat3FromMgl(m.ToMgl().Transpose())
}

func (m Mat3) Inverse() Mat3 {
	return NewMat3FromMgl(m.ToMgl().Inv())
}

func (m Mat3) Determinant() float32 {
	return m.ToMgl().Det()
}

func (m Mat3) MulVec3(v Vec3) Vec3 {
	return NewVec3FromMgl(m.ToMgl().Mul3x1(v.ToMgl()))
}

// ToArray copies the coefficients to array starting at offset.
func (m Mat3) ToArray(array []float32, offset int) {
	copy(array[offset:offset+9], m.Data[:])
}

// Equals reports per-coefficient near-equality within DefaultEpsilon.
func (m Mat3) Equals(other Mat3) bool {
	return m.EqualsTolerance(other, DefaultEpsilon)
}

func (m Mat3) EqualsTolerance(other Mat3, tolerance float32) bool {
	return m.ToMgl().ApproxEqualThreshold(other.ToMgl(), tolerance)
}

func (m Mat3) ToMgl() mgl32.Mat3 {
	return mgl32.Mat3(m.Data)
}

func NewMat3FromMgl(m mgl32.Mat3) Mat3 {
	return Mat3{Data: [9]float32(m)}
}

/**
 * @brief Reconstructs the 2D affine transform as a full 4x4: xy translation,
 * rotation about the Z axis, xy scale, with z-translation 0 and z-scale 1.
 * This allows 2D transforms to be embedded in a 3D pipeline.
 */
func (m Mat2x3) ToMat4() Mat4 {
	var t2 Transform2
	m.Decompose(&t2)
	t3 := Transform3{
		Translation: Vec3{t2.Translation.X, t2.Translation.Y, 0.0},
		Rotation:    NewQuatFromAxisAngle(NewVec3Back(), t2.Rotation),
		Scale:       Vec3{t2.Scale.X, t2.Scale.Y, 1.0},
		Order:       OrderTRS,
	}
	out, _ := t3.Compose(nil)
	return *out
}
