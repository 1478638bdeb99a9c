// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package utils

// AverageFloat32 returns the arithmetic mean, 0 for an empty slice.
func AverageFloat32(values []float32) float32 {
	if len(values) == 0 {
		return 0
	}
	var sum float32
	for _, v := range values {
		sum += v
	}
	return sum / float32(len(values))
}

// VarianceFloat32 returns the population variance, 0 for an empty slice.
func VarianceFloat32(values []float32) float32 {
	if len(values) == 0 {
		return 0
	}
	mean := AverageFloat32(values)
	var sum float32
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float32(len(values))
}

// SumFloat32 adds all values.
func SumFloat32(values []float32) float32 {
	var sum float32
	for _, v := range values {
		sum += v
	}
	return sum
}

// RangeFloat32 returns max - min, 0 for an empty slice.
func RangeFloat32(values []float32) float32 {
	if len(values) == 0 {
		return 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}
