// Package otp produces the numeric one-time codes mailed during signup and
// password reset.
package otp

import (
	"math/rand/v2"
	"strconv"
)

const (
	// CodeLength is the number of digits in a generated code.
	CodeLength = 6

	minCode = 100000
	maxCode = 999999
)

// GenerateCode returns a uniformly distributed code in [100000, 999999].
// The source is not cryptographic; codes are short-lived and single-use.
func GenerateCode() string {
	return strconv.Itoa(minCode + rand.IntN(maxCode-minCode+1))
}
