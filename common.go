package datetime

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"math"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa     func(int) string                 = strconv.Itoa
	modFloat func(float64) (float64, float64) = math.Modf
	rne      func(float64) float64            = math.RoundToEven
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
divmod returns the floored quotient and non-negative remainder of a/b
for positive b, satisfying a == q*b + m with 0 <= m < b. Plain Go
integer division truncates toward zero, which breaks the carry/borrow
arithmetic used throughout this package for negative magnitudes.
*/
func divmod(a, b int) (q, m int) {
	q = a / b
	m = a % b
	if m < 0 {
		q--
		m += b
	}
	return
}

/*
put2 writes the two-digit zero-padded decimal form of v into b at
offset i. v must reside within [0,99].
*/
func put2(b []byte, i, v int) {
	b[i] = byte('0' + v/10)
	b[i+1] = byte('0' + v%10)
}

/*
put4 writes the four-digit zero-padded decimal form of v into b at
offset i. v must reside within [0,9999].
*/
func put4(b []byte, i, v int) {
	b[i] = byte('0' + (v/1000)%10)
	b[i+1] = byte('0' + (v/100)%10)
	b[i+2] = byte('0' + (v/10)%10)
	b[i+3] = byte('0' + v%10)
}

/*
put6 writes the six-digit zero-padded decimal form of v into b at
offset i. v must reside within [0,999999].
*/
func put6(b []byte, i, v int) {
	for j := 5; j >= 0; j-- {
		b[i+j] = byte('0' + v%10)
		v /= 10
	}
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

/*
mix32 folds a sequence of integers into a 32-bit FNV-1a style hash.
The computation is a pure function of its inputs, so redundant
concurrent evaluation always reproduces the same value.
*/
func mix32(vals ...int) uint32 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	h := uint32(offset32)
	for _, v := range vals {
		u := uint64(v)
		for i := 0; i < 8; i++ {
			h ^= uint32(u & 0xff)
			h *= prime32
			u >>= 8
		}
	}
	return h
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
