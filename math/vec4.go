package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

/**
 * @brief Creates and returns a new vec4 from the supplied vec3 and w component.
 */
func NewVec4FromVec3(vector Vec3, w float32) Vec4 {
	return Vec4{vector.X, vector.Y, vector.Z, w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0f.
 */
func NewVec4Zero() Vec4 {
	return Vec4{}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0f.
 */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

// NewVec4FromArray reads four components from array starting at offset.
func NewVec4FromArray(array []float32, offset int) Vec4 {
	return Vec4{array[offset], array[offset+1], array[offset+2], array[offset+3]}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the vector. A zero-length vector
 * normalizes to the zero vector, never to NaN.
 */
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	if l <= K_FLOAT_EPSILON {
		return Vec4{}
	}
	return Vec4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// Lerp linearly interpolates towards other. t is not clamped.
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return Vec4{
		Lerp32(v.X, other.X, t),
		Lerp32(v.Y, other.Y, t),
		Lerp32(v.Z, other.Z, t),
		Lerp32(v.W, other.W, t),
	}
}

/**
 * @brief Compares all elements of the two vectors and ensures the difference
 * is less than or equal to the tolerance.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	return FloatEqual(v.X, other.X, tolerance) &&
		FloatEqual(v.Y, other.Y, tolerance) &&
		FloatEqual(v.Z, other.Z, tolerance) &&
		FloatEqual(v.W, other.W, tolerance)
}

// IsValid reports whether no component is NaN or infinite.
func (v Vec4) IsValid() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z) && IsFinite(v.W)
}

// ToArray copies the components to array starting at offset.
func (v Vec4) ToArray(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}

func (v Vec4) ToMgl() mgl32.Vec4 {
	return mgl32.Vec4{v.X, v.Y, v.Z, v.W}
}

func NewVec4FromMgl(v mgl32.Vec4) Vec4 {
	return Vec4{v.X(), v.Y(), v.Z(), v.W()}
}
