package core

import "math"

const (
	q31Scale    = 0x7FFFFFFF
	q31InvScale = 1.0 / 2147483648.0
)

// FloatToQ31 encodes x as a signed 1.31 fixed-point value. Inputs outside
// [-1, 1] saturate; NaN encodes as 0.
func FloatToQ31(x float64) int32 {
	if math.IsNaN(x) {
		return 0
	}
	if x >= 1 {
		return q31Scale
	}
	if x <= -1 {
		return -q31Scale
	}
	return int32(x * q31Scale)
}

// Q31ToFloat decodes a signed 1.31 fixed-point value into [-1, 1).
func Q31ToFloat(q int32) float64 {
	return float64(q) * q31InvScale
}

// ParamValueToFloat decodes a 10-bit host parameter value into [0, 1].
func ParamValueToFloat(value uint16) float64 {
	const maxParamValue = 1023
	if value >= maxParamValue {
		return 1
	}
	return float64(value) / maxParamValue
}
