// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlemit

import (
	"math"
	"strconv"
)

// appendFloat appends the shortest text that round-trips v at the given bit
// size. Layout follows the Ryū "pretty" form: integral values keep a ".0",
// moderate magnitudes use plain decimal notation and the rest use d.ddde<exp>.
// The decimal range is wider for float32 on the small side and narrower on
// the large side.
func appendFloat(dst []byte, v float64, bitSize int) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "NaN"...)
	case math.IsInf(v, 1):
		return append(dst, "inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-inf"...)
	}

	if math.Signbit(v) {
		dst = append(dst, '-')
		v = -v
	}
	if v == 0 {
		return append(dst, "0.0"...)
	}

	// Shortest digits come back as d.dddde±XX
	var buf [32]byte
	sci := strconv.AppendFloat(buf[:0], v, 'e', -1, bitSize)

	var digitsBuf [24]byte
	digits := digitsBuf[:0]
	expIdx := 0
	for i, c := range sci {
		if c == 'e' {
			expIdx = i
			break
		}
		if c != '.' {
			digits = append(digits, c)
		}
	}
	exp, _ := strconv.Atoi(string(sci[expIdx+1:]))

	// Value is 0.digits * 10^kk
	length := len(digits)
	kk := exp + 1
	k := kk - length

	// Decimal notation covers minDecimal < kk <= maxDecimal
	minDecimal, maxDecimal := -5, 16
	if bitSize == 32 {
		minDecimal, maxDecimal = -6, 13
	}

	switch {
	case k >= 0 && kk <= maxDecimal:
		dst = append(dst, digits...)
		for i := 0; i < k; i++ {
			dst = append(dst, '0')
		}
		return append(dst, ".0"...)

	case kk > 0 && kk <= maxDecimal:
		dst = append(dst, digits[:kk]...)
		dst = append(dst, '.')
		return append(dst, digits[kk:]...)

	case kk > minDecimal && kk <= 0:
		dst = append(dst, "0."...)
		for i := kk; i < 0; i++ {
			dst = append(dst, '0')
		}
		return append(dst, digits...)

	default:
		dst = append(dst, digits[0])
		if length > 1 {
			dst = append(dst, '.')
			dst = append(dst, digits[1:]...)
		}
		dst = append(dst, 'e')
		return strconv.AppendInt(dst, int64(kk-1), 10)
	}
}
