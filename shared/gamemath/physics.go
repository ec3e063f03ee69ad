package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float32) float32 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// FloorDiv returns floor(v / size) as an int. Used to map world pixels to
// grid cells, including the negative side of the origin.
func FloorDiv(v float32, size int) int {
	return int(math.Floor(float64(v) / float64(size)))
}

// Floor and Ceil are float32 conveniences over the math package.
func Floor(v float32) int { return int(math.Floor(float64(v))) }
func Ceil(v float32) int  { return int(math.Ceil(float64(v))) }

// ClampInt constrains value to [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
