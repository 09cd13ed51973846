package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion struct {
	X, Y, Z, W float32
}

/** @brief A 4x4 column-major matrix, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/** @brief A 3x3 column-major matrix, typically used as a pure linear map (no translation). */
type Mat3 struct {
	/** @brief The matrix elements */
	Data [9]float32
}

/**
 * @brief A 2D affine matrix with six coefficients, laid out column-major
 * as [a b c d tx ty]: columns [a b], [c d] hold the linear part and
 * [tx ty] the translation.
 */
type Mat2x3 struct {
	/** @brief The matrix elements */
	Data [6]float32
}

// TransformOrder names the sequence in which translation, rotation and
// scale are concatenated when building a matrix. The first letter is
// applied first (innermost).
type TransformOrder uint8

const (
	OrderTRS TransformOrder = iota
	OrderTSR
	OrderRTS
	OrderRST
	OrderSTR
	OrderSRT
)

func (o TransformOrder) String() string {
	switch o {
	case OrderTRS:
		return "TRS"
	case OrderTSR:
		return "TSR"
	case OrderRTS:
		return "RTS"
	case OrderRST:
		return "RST"
	case OrderSTR:
		return "STR"
	case OrderSRT:
		return "SRT"
	}
	return "unknown"
}

// ParseTransformOrder converts an order name ("TRS", "SRT", ...) into its
// TransformOrder value. Unknown names report ok == false.
func ParseTransformOrder(s string) (TransformOrder, bool) {
	switch s {
	case "TRS":
		return OrderTRS, true
	case "TSR":
		return OrderTSR, true
	case "RTS":
		return OrderRTS, true
	case "RST":
		return OrderRST, true
	case "STR":
		return OrderSTR, true
	case "SRT":
		return OrderSRT, true
	}
	return OrderTRS, false
}

/**
 * @brief Describes a 3D affine transform as translation, rotation, scale
 * and the order in which the three are applied.
 */
type Transform3 struct {
	Translation Vec3
	Rotation    Quaternion
	Scale       Vec3
	Order       TransformOrder
}

/**
 * @brief Describes a 2D affine transform. Rotation is an angle in radians
 * about the forward axis.
 */
type Transform2 struct {
	Translation Vec2
	Rotation    float32
	Scale       Vec2
	Order       TransformOrder
}

// EulerOrder selects the axis application order for Euler-angle to
// quaternion conversion.
type EulerOrder uint8

const (
	EulerXYZ EulerOrder = iota
	EulerXZY
	EulerYXZ
	EulerYZX
	EulerZXY
	EulerZYX
)
