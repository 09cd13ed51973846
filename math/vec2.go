package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

// NewVec2FromArray reads two components from array starting at offset.
func NewVec2FromArray(array []float32, offset int) Vec2 {
	return Vec2{array[offset], array[offset+1]}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

/**
 * @brief Returns a normalized copy of the vector. A zero-length vector
 * normalizes to the zero vector, never to NaN.
 */
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l <= K_FLOAT_EPSILON {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp linearly interpolates towards other. t is not clamped.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{
		Lerp32(v.X, other.X, t),
		Lerp32(v.Y, other.Y, t),
	}
}

/**
 * @brief Compares all elements of the two vectors and ensures the difference
 * is less than or equal to the tolerance.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	return FloatEqual(v.X, other.X, tolerance) &&
		FloatEqual(v.Y, other.Y, tolerance)
}

// IsValid reports whether no component is NaN or infinite.
func (v Vec2) IsValid() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

// ToArray copies the components to array starting at offset.
func (v Vec2) ToArray(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
}

func (v Vec2) ToMgl() mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

func NewVec2FromMgl(v mgl32.Vec2) Vec2 {
	return Vec2{v.X(), v.Y()}
}
