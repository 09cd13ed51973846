package math

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/prisma/core"
)

/**
 * @brief Creates and returns an identity 2D affine matrix.
 */
func NewMat2x3Identity() Mat2x3 {
	return Mat2x3{Data: [6]float32{1, 0, 0, 1, 0, 0}}
}

/**
 * @brief Creates and returns a 2D affine matrix with all elements set to 0.0f.
 */
func NewMat2x3Zero() Mat2x3 {
	return Mat2x3{}
}

/**
 * @brief Creates and returns a 2D translation matrix.
 */
func NewMat2x3FromTranslation(position Vec2) Mat2x3 {
	return Mat2x3{Data: [6]float32{1, 0, 0, 1, position.X, position.Y}}
}

/**
 * @brief Creates and returns a 2D rotation matrix from an angle in radians.
 */
func NewMat2x3FromRotation(radians float32) Mat2x3 {
	sin, cos := math32.Sincos(radians)
	return Mat2x3{Data: [6]float32{cos, sin, -sin, cos, 0, 0}}
}

/**
 * @brief Creates and returns a 2D scale matrix.
 */
func NewMat2x3FromScale(scale Vec2) Mat2x3 {
	return Mat2x3{Data: [6]float32{scale.X, 0, 0, scale.Y, 0, 0}}
}

// NewMat2x3FromArray reads six coefficients from array starting at offset.
func NewMat2x3FromArray(array []float32, offset int) Mat2x3 {
	m := Mat2x3{}
	copy(m.Data[:], array[offset:offset+6])
	return m
}

func (m Mat2x3) Mul(other Mat2x3) Mat2x3 {
	a := m.Data
	b := other.Data
	return Mat2x3{Data: [6]float32{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}}
}

// Inverse returns the inverse transform. A singular linear part (zero
// determinant) returns the zero matrix.
func (m Mat2x3) Inverse() Mat2x3 {
	a := m.Data
	det := a[0]*a[3] - a[1]*a[2]
	if math32.Abs(det) <= K_FLOAT_EPSILON {
		return Mat2x3{}
	}
	return Mat2x3{Data: [6]float32{
		a[3] / det,
		-a[1] / det,
		-a[2] / det,
		a[0] / det,
		(a[2]*a[5] - a[3]*a[4]) / det,
		(a[1]*a[4] - a[0]*a[5]) / det,
	}}
}

// Translate post-multiplies a translation onto the accumulator.
func (m *Mat2x3) Translate(position Vec2) *Mat2x3 {
	*m = m.Mul(NewMat2x3FromTranslation(position))
	return m
}

// Rotate post-multiplies a rotation onto the accumulator.
func (m *Mat2x3) Rotate(radians float32) *Mat2x3 {
	*m = m.Mul(NewMat2x3FromRotation(radians))
	return m
}

// Scale post-multiplies a scale onto the accumulator.
func (m *Mat2x3) Scale(scale Vec2) *Mat2x3 {
	*m = m.Mul(NewMat2x3FromScale(scale))
	return m
}

func (m Mat2x3) GetTranslation() Vec2 {
	return Vec2{m.Data[4], m.Data[5]}
}

func (m *Mat2x3) SetTranslation(position Vec2) {
	m.Data[4] = position.X
	m.Data[5] = position.Y
}

// GetRotation returns the rotation angle in radians, assuming a proper
// rotation (no reflection) in the linear part.
func (m Mat2x3) GetRotation() float32 {
	return math32.Atan2(m.Data[1], m.Data[0])
}

// SetRotation is not supported for 2D affine matrices and always returns
// core.ErrNotSupported. Callers must treat it as permanently unsupported.
func (m *Mat2x3) SetRotation(radians float32) error {
	return fmt.Errorf("mat2x3 set rotation: %w", core.ErrNotSupported)
}

func (m Mat2x3) GetScale() Vec2 {
	return Vec2{
		math32.Hypot(m.Data[0], m.Data[1]),
		math32.Hypot(m.Data[2], m.Data[3]),
	}
}

// TransformPoint applies the full affine transform to a point.
func (m Mat2x3) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		m.Data[0]*p.X + m.Data[2]*p.Y + m.Data[4],
		m.Data[1]*p.X + m.Data[3]*p.Y + m.Data[5],
	}
}

// TransformDirection applies only the linear part to a direction.
func (m Mat2x3) TransformDirection(d Vec2) Vec2 {
	return Vec2{
		m.Data[0]*d.X + m.Data[2]*d.Y,
		m.Data[1]*d.X + m.Data[3]*d.Y,
	}
}

// ToArray copies the coefficients to array starting at offset.
func (m Mat2x3) ToArray(array []float32, offset int) {
	copy(array[offset:offset+6], m.Data[:])
}

// IsValid reports whether no coefficient is NaN or infinite.
func (m Mat2x3) IsValid() bool {
	for _, f := range m.Data {
		if !IsFinite(f) {
			return false
		}
	}
	return true
}

// Equals reports per-coefficient near-equality within DefaultEpsilon.
func (m Mat2x3) Equals(other Mat2x3) bool {
	return m.EqualsTolerance(other, DefaultEpsilon)
}

func (m Mat2x3) EqualsTolerance(other Mat2x3, tolerance float32) bool {
	for i := range m.Data {
		if !FloatEqual(m.Data[i], other.Data[i], tolerance) {
			return false
		}
	}
	return true
}

// NewTransform2 returns an identity 2D transform with TRS order.
func NewTransform2() Transform2 {
	return Transform2{
		Translation: NewVec2Zero(),
		Rotation:    0.0,
		Scale:       NewVec2One(),
		Order:       OrderTRS,
	}
}

/**
 * @brief Builds a 2D affine matrix from the transform, mirroring the 3D
 * contract: accumulator seeded from the first-listed component, remaining
 * two post-multiplied in sequence. An order outside the six known values
 * returns core.ErrUnknownOrder.
 */
func (t Transform2) Compose(out *Mat2x3) (*Mat2x3, error) {
	if out == nil {
		out = &Mat2x3{}
	}
	var m Mat2x3
	switch t.Order {
	case OrderTRS:
		m = NewMat2x3FromTranslation(t.Translation)
		m.Rotate(t.Rotation)
		m.Scale(t.Scale)
	case OrderTSR:
		m = NewMat2x3FromTranslation(t.Translation)
		m.Scale(t.Scale)
		m.Rotate(t.Rotation)
	case OrderRTS:
		m = NewMat2x3FromRotation(t.Rotation)
		m.Translate(t.Translation)
		m.Scale(t.Scale)
	case OrderRST:
		m = NewMat2x3FromRotation(t.Rotation)
		m.Scale(t.Scale)
		m.Translate(t.Translation)
	case OrderSTR:
		m = NewMat2x3FromScale(t.Scale)
		m.Translate(t.Translation)
		m.Rotate(t.Rotation)
	case OrderSRT:
		m = NewMat2x3FromScale(t.Scale)
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
 * reported order is always TRS. Scale components must be non-zero and the
 * linear part a proper rotation for the angle to be meaningful.
 */
func (m Mat2x3) Decompose(out *Transform2) *Transform2 {
	if out == nil {
		out = &Transform2{}
	}
	*out = Transform2{
		Translation: m.GetTranslation(),
		Rotation:    m.GetRotation(),
		Scale:       m.GetScale(),
		Order:       OrderTRS,
	}
	return out
}

// wrapAngle wraps an angle to the range [-pi, pi].
func wrapAngle(radians float32) float32 {
	for radians > K_PI {
		radians -= K_PI_2
	}
	for radians < -K_PI {
		radians += K_PI_2
	}
	return radians
}

// lerpAngle interpolates between two angles along the shortest arc.
func lerpAngle(a, b, t float32) float32 {
	return a + wrapAngle(b-a)*t
}

/**
 * @brief Interpolates between two 2D affine matrices via
 * decompose/blend/recompose, the 2D mirror of LerpMat4. Rotation blends
 * along the shortest arc; alpha is not clamped.
 */
func LerpMat2x3(a, b Mat2x3, alpha float32, out *Mat2x3) *Mat2x3 {
	var ta, tb Transform2
	a.Decompose(&ta)
	b.Decompose(&tb)
	blended := Transform2{
		Translation: ta.Translation.Lerp(tb.Translation, alpha),
		Rotation:    lerpAngle(ta.Rotation, tb.Rotation, alpha),
		Scale:       ta.Scale.Lerp(tb.Scale, alpha),
		Order:       OrderTRS,
	}
	out, _ = blended.Compose(out)
	return out
}

// TransformEqualsMat2x3 decomposes both matrices and compares translation,
// rotation and scale independently within DefaultEpsilon.
func TransformEqualsMat2x3(a, b Mat2x3) bool {
	return TransformEqualsMat2x3Tolerance(a, b, DefaultEpsilon)
}

func TransformEqualsMat2x3Tolerance(a, b Mat2x3, tolerance float32) bool {
	var ta, tb Transform2
	a.Decompose(&ta)
	b.Decompose(&tb)
	return ta.Translation.Compare(tb.Translation, tolerance) &&
		ta.Scale.Compare(tb.Scale, tolerance) &&
		math32.Abs(wrapAngle(ta.Rotation-tb.Rotation)) <= tolerance
}
