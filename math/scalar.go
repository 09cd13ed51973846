package math

import (
	"time"

	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 1.0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07

	/** @brief The tolerance used by the Equals/Compare family when none is supplied. */
	DefaultEpsilon float32 = 0.001
)

var randSeeded bool = false

func seedOnce() {
	if !randSeeded {
		rand.Seed(uint64(time.Now().UnixNano()))
		randSeeded = true
	}
}

/**
 * @brief Converts provided degrees to radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// Lerp32 linearly interpolates between a and b. t is not clamped; values
// outside [0,1] extrapolate.
func Lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}

// FloatEqual reports whether a and b are within tolerance of each other.
func FloatEqual(a, b, tolerance float32) bool {
	return math32.Abs(a-b) <= tolerance
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func RandomInRange(min, max int32) int32 {
	seedOnce()
	return (rand.Int31() % (max - min + 1)) + min
}

func FRandom() float32 {
	seedOnce()
	return rand.Float32()
}

func FRandomInRange(min, max float32) float32 {
	return min + FRandom()*(max-min)
}

// RandomUnitVec3 returns a uniformly distributed unit-length vector.
func RandomUnitVec3() Vec3 {
	for {
		v := Vec3{
			FRandomInRange(-1, 1),
			FRandomInRange(-1, 1),
			FRandomInRange(-1, 1),
		}
		if l := v.LengthSquared(); l > K_FLOAT_EPSILON && l <= 1.0 {
			return v.Normalize()
		}
	}
}

// RandomQuat returns a random unit rotation.
func RandomQuat() Quaternion {
	return NewQuatFromAxisAngle(RandomUnitVec3(), FRandomInRange(0, K_PI_2))
}
