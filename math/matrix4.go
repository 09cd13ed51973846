package math

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/prisma/core"
)

/**
 * @brief Creates and returns an identity matrix.
 */
func NewMat4Identity() Mat4 {
	return NewMat4FromMgl(mgl32.Ident4())
}

/**
 * @brief Creates and returns a matrix with all elements set to 0.0f.
 */
func NewMat4Zero() Mat4 {
	return Mat4{}
}

/**
 * @brief Creates and returns a translation matrix from the supplied position.
 */
func NewMat4FromTranslation(position Vec3) Mat4 {
	return NewMat4FromMgl(mgl32.Translate3D(position.X, position.Y, position.Z))
}

/**
 * @brief Creates and returns a rotation matrix from the supplied quaternion.
 */
func NewMat4FromRotation(rotation Quaternion) Mat4 {
	return rotation.ToMat4()
}

/**
 * @brief Creates and returns a scale matrix from the supplied scale factors.
 */
func NewMat4FromScale(scale Vec3) Mat4 {
	return NewMat4FromMgl(mgl32.Scale3D(scale.X, scale.Y, scale.Z))
}

// NewMat4FromArray reads sixteen column-major coefficients from array
// starting at offset.
func NewMat4FromArray(array []float32, offset int) Mat4 {
	m := Mat4{}
	copy(m.Data[:], array[offset:offset+16])
	return m
}

func (m Mat4) Mul(other Mat4) Mat4 {
	return NewMat4FromMgl(m.ToMgl().Mul4(other.ToMgl()))
}

func (m Mat4) Inverse() Mat4 {
	return NewMat4FromMgl(m.ToMgl().Inv())
}

func (m Mat4) Transpose() Mat4 {
	return NewMat4FromMgl(m.ToMgl().Transpose())
}

func (m Mat4) Determinant() float32 {
	return m.ToMgl().Det()
}

// Translate post-multiplies a translation onto the accumulator. The prior
// value of m is fully consumed before the write, so chained composition
// into one accumulator is well defined.
func (m *Mat4) Translate(position Vec3) *Mat4 {
	*m = m.Mul(NewMat4FromTranslation(position))
	return m
}

// Rotate post-multiplies a rotation onto the accumulator.
func (m *Mat4) Rotate(rotation Quaternion) *Mat4 {
	*m = m.Mul(rotation.ToMat4())
	return m
}

// Scale post-multiplies a scale onto the accumulator.
func (m *Mat4) Scale(scale Vec3) *Mat4 {
	*m = m.Mul(NewMat4FromScale(scale))
	return m
}

// GetTranslation returns the translation held in the fourth column.
func (m Mat4) GetTranslation() Vec3 {
	return Vec3{m.Data[12], m.Data[13], m.Data[14]}
}

// SetTranslation replaces the translation, leaving the linear part alone.
func (m *Mat4) SetTranslation(position Vec3) {
	m.Data[12] = position.X
	m.Data[13] = position.Y
	m.Data[14] = position.Z
}

// GetScale returns the per-axis scale as the lengths of the three basis
// columns.
func (m Mat4) GetScale() Vec3 {
	return Vec3{
		Vec3{m.Data[0], m.Data[1], m.Data[2]}.Length(),
		Vec3{m.Data[4], m.Data[5], m.Data[6]}.Length(),
		Vec3{m.Data[8], m.Data[9], m.Data[10]}.Length(),
	}
}

/**
 * @brief Returns the orientation of the matrix as a normalized quaternion.
 * Scale is divided out of the basis columns first so a scaled matrix still
 * yields a clean rotation. Assumes a proper rotation (no reflection).
 */
func (m Mat4) GetRotation() Quaternion {
	s := m.GetScale()
	if s.X <= K_FLOAT_EPSILON || s.Y <= K_FLOAT_EPSILON || s.Z <= K_FLOAT_EPSILON {
		// Zero scale collapses a basis column; orientation is ill-defined.
		return NewQuatIdentity()
	}
	r := mgl32.Ident4()
	for c := 0; c < 3; c++ {
		div := [3]float32{s.X, s.Y, s.Z}[c]
		for row := 0; row < 3; row++ {
			r[c*4+row] = m.Data[c*4+row] / div
		}
	}
	return NewQuatFromMgl(mgl32.Mat4ToQuat(r)).Normalize()
}

// SetRotation replaces the orientation while preserving the current
// translation and scale.
func (m *Mat4) SetRotation(rotation Quaternion) {
	t := Transform3{
		Translation: m.GetTranslation(),
		Rotation:    rotation,
		Scale:       m.GetScale(),
		Order:       OrderTRS,
	}
	// TRS is one of the closed set of orders, so Compose cannot fail here.
	t.Compose(m)
}

func (m Mat4) MulVec4(v Vec4) Vec4 {
	return NewVec4FromMgl(m.ToMgl().Mul4x1(v.ToMgl()))
}

// TransformPoint applies the full affine transform to a point (w = 1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return NewVec3FromVec4(m.MulVec4(NewVec4FromVec3(p, 1.0)))
}

// TransformDirection applies only the linear part to a direction (w = 0).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return NewVec3FromVec4(m.MulVec4(NewVec4FromVec3(d, 0.0)))
}

/**
 * @brief Returns a forward vector relative to the provided matrix.
 */
func (m Mat4) Forward() Vec3 {
	return Vec3{-m.Data[8], -m.Data[9], -m.Data[10]}.Normalize()
}

/**
 * @brief Returns a backward vector relative to the provided matrix.
 */
func (m Mat4) Backward() Vec3 {
	return Vec3{m.Data[8], m.Data[9], m.Data[10]}.Normalize()
}

/**
 * @brief Returns an upward vector relative to the provided matrix.
 */
func (m Mat4) Up() Vec3 {
	return Vec3{m.Data[4], m.Data[5], m.Data[6]}.Normalize()
}

/**
 * @brief Returns a downward vector relative to the provided matrix.
 */
func (m Mat4) Down() Vec3 {
	return Vec3{-m.Data[4], -m.Data[5], -m.Data[6]}.Normalize()
}

/**
 * @brief Returns a left vector relative to the provided matrix.
 */
func (m Mat4) Left() Vec3 {
	return Vec3{-m.Data[0], -m.Data[1], -m.Data[2]}.Normalize()
}

/**
 * @brief Returns a right vector relative to the provided matrix.
 */
func (m Mat4) Right() Vec3 {
	return Vec3{m.Data[0], m.Data[1], m.Data[2]}.Normalize()
}

// ToArray copies the coefficients to array starting at offset.
func (m Mat4) ToArray(array []float32, offset int) {
	copy(array[offset:offset+16], m.Data[:])
}

// IsValid reports whether no coefficient is NaN or infinite.
func (m Mat4) IsValid() bool {
	for _, f := range m.Data {
		if !IsFinite(f) {
			return false
		}
	}
	return true
}

// Equals reports per-coefficient near-equality within DefaultEpsilon.
func (m Mat4) Equals(other Mat4) bool {
	return m.EqualsTolerance(other, DefaultEpsilon)
}

func (m Mat4) EqualsTolerance(other Mat4, tolerance float32) bool {
	return m.ToMgl().ApproxEqualThreshold(other.ToMgl(), tolerance)
}

func (m Mat4) ToMgl() mgl32.Mat4 {
	return mgl32.Mat4(m.Data)
}

func NewMat4FromMgl(m mgl32.Mat4) Mat4 {
	return Mat4{Data: [16]float32(m)}
}

// NewTransform3 returns an identity transform: zero translation, identity
// rotation, unit scale, TRS order. Build partial transforms by overwriting
// the fields that matter.
func NewTransform3() Transform3 {
	return Transform3{
		Translation: NewVec3Zero(),
		Rotation:    NewQuatIdentity(),
		Scale:       NewVec3One(),
		Order:       OrderTRS,
	}
}

/**
 * @brief Builds a matrix from the transform by initializing the accumulator
 * from the first-listed component and post-multiplying the remaining two in
 * sequence. Each of the six orders is a distinct hardcoded sequence.
 *
 * out may be nil (a new matrix is allocated) and may alias any matrix the
 * caller owns; the result is only written once it is fully built. An order
 * outside the six known values returns core.ErrUnknownOrder.
 */
func (t Transform3) Compose(out *Mat4) (*Mat4, error) {
	if out == nil {
		out = &Mat4{}
	}
	var m Mat4
	switch t.Order {
	case OrderTRS:
		m = NewMat4FromTranslation(t.Translation)
		m.Rotate(t.Rotation)
		m.Scale(t.Scale)
	case OrderTSR:
		m = NewMat4FromTranslation(t.Translation)
		m.Scale(t.Scale)
		m.Rotate(t.Rotation)
	case OrderRTS:
		m = NewMat4FromRotation(t.Rotation)
		m.Translate(t.Translation)
		m.Scale(t.Scale)
	case OrderRST:
		m = NewMat4FromRotation(t.Rotation)
		m.Scale(t.Scale)
		m.Translate(t.Translation)
	case OrderSTR:
		m = NewMat4FromScale(t.Scale)
		m.Translate(t.Translation)
		m.Rotate(t.Rotation)
	case OrderSRT:
		m = NewMat4FromScale(t.Scale)
		m.Rotate(t.Rotation)
		m.Translate(t.Translation)
	default:
		return nil, fmt.Errorf("compose with order %d: %w", t.Order, core.ErrUnknownOrder)
	}
	*out = m
	return out, nil
}

/**
 * @brief Extracts translation, rotation and scale from the matrix. The
 * reported order is always TRS regardless of how the matrix was built;
 * recomposing under TRS reproduces the same matrix, not necessarily the
 * same transform fields that built it.
 *
 * Scale components must be non-zero and the orientation a proper rotation
 * for the rotation extraction to be meaningful.
 */
func (m Mat4) Decompose(out *Transform3) *Transform3 {
	if out == nil {
		out = &Transform3{}
	}
	*out = Transform3{
		Translation: m.GetTranslation(),
		Rotation:    m.GetRotation(),
		Scale:       m.GetScale(),
		Order:       OrderTRS,
	}
	return out
}

/**
 * @brief Interpolates between two matrices by decomposing both, linearly
 * interpolating translation and scale, spherically interpolating rotation,
 * and recomposing under TRS. A per-coefficient matrix lerp would not
 * preserve rigid transforms; this is the form animation blending needs.
 * Alpha is not clamped; values outside [0,1] extrapolate.
 */
func LerpMat4(a, b Mat4, alpha float32, out *Mat4) *Mat4 {
	var ta, tb Transform3
	a.Decompose(&ta)
	b.Decompose(&tb)
	blended := Transform3{
		Translation: ta.Translation.Lerp(tb.Translation, alpha),
		Rotation:    ta.Rotation.Slerp(tb.Rotation, alpha),
		Scale:       ta.Scale.Lerp(tb.Scale, alpha),
		Order:       OrderTRS,
	}
	out, _ = blended.Compose(out)
	return out
}

// TransformEqualsMat4 decomposes both matrices and compares translation,
// rotation and scale independently within DefaultEpsilon. Matrices that
// differ coefficient-wise but encode the same transform under floating
// error are equal here and unequal under Equals.
func TransformEqualsMat4(a, b Mat4) bool {
	return TransformEqualsMat4Tolerance(a, b, DefaultEpsilon)
}

func TransformEqualsMat4Tolerance(a, b Mat4, tolerance float32) bool {
	var ta, tb Transform3
	a.Decompose(&ta)
	b.Decompose(&tb)
	return ta.Translation.Compare(tb.Translation, tolerance) &&
		ta.Rotation.Compare(tb.Rotation, tolerance) &&
		ta.Scale.Compare(tb.Scale, tolerance)
}
