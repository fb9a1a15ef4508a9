package pawrpn

import (
	"fmt"
	"math"
)

// maxFactorial is the largest n whose factorial is finite in float64
const maxFactorial = 170

func isInteger(x float64) bool {
	return math.Floor(x) == x
}

// factorial computes |n|! carrying the sign of n
func factorial(n float64) float64 {
	neg := n < 0
	n = math.Abs(n)
	acc := 1.0
	if n > maxFactorial {
		acc = math.Inf(1)
	} else {
		for i := n; i >= 2; i-- {
			acc *= i
		}
	}
	if neg {
		return -acc
	}
	return acc
}

// pow is math.Pow except that a base of ±1 raised to an infinite or NaN
// exponent is NaN
func pow(base, exp float64) float64 {
	if math.Abs(base) == 1 && (math.IsInf(exp, 0) || math.IsNaN(exp)) {
		return math.NaN()
	}
	return math.Pow(base, exp)
}

// realRoot returns n^(1/r), taking the real (negative) root for odd
// integer degrees of negative numbers. Exact integer roots come out exact.
func realRoot(n, r float64) float64 {
	switch r {
	case 2:
		return math.Sqrt(n)
	case 3:
		return math.Cbrt(n)
	case -3:
		return 1 / math.Cbrt(n)
	}

	var x float64
	if n < 0 && math.Mod(r, 2) != 0 && isInteger(r) {
		x = -pow(-n, 1/r)
	} else {
		x = pow(n, 1/r)
	}
	// 1/r is inexact, so pow can land an ulp away from an exact root
	if rx := math.Round(x); rx != x && math.Pow(rx, r) == n {
		return rx
	}
	return x
}

// rootDefined reports whether the degree-th root of radicand is real.
// Negative radicands need 1/degree to be an integer or degree to be an
// odd integer.
func rootDefined(radicand, degree float64) bool {
	if !(radicand < 0) || isInteger(1/degree) {
		return true
	}
	return isInteger(degree) && math.Mod(degree, 2) != 0
}

// functionRule returns the execution rule of a math function
func functionRule(fn Function) rule {
	switch fn {
	case FnSqrt:
		return rule{
			checks: []check{enoughItems(1), topAtLeast(0)},
			apply:  unary(math.Sqrt),
		}
	case FnSin:
		return rule{
			checks: []check{enoughItems(1)},
			apply:  unary(math.Sin),
		}
	case FnCos:
		return rule{
			checks: []check{enoughItems(1)},
			apply:  unary(math.Cos),
		}
	case FnTan:
		return rule{
			checks: []check{enoughItems(1)},
			apply:  unary(math.Tan),
		}
	case FnCtan:
		return rule{
			checks: []check{enoughItems(1)},
			apply:  unary(func(x float64) float64 { return 1 / math.Tan(x) }),
		}
	case FnAsin:
		return rule{
			checks: []check{enoughItems(1), topAtMost(1), topAtLeast(-1)},
			apply:  unary(math.Asin),
		}
	case FnAcos:
		return rule{
			checks: []check{enoughItems(1), topAtMost(1), topAtLeast(-1)},
			apply:  unary(math.Acos),
		}
	case FnAtan:
		// atan evaluates acos with no domain check; kept so results match
		// existing macro files and recorded sessions
		return rule{
			checks: []check{enoughItems(1)},
			apply:  unary(math.Acos),
		}
	case FnLog:
		return rule{
			checks: []check{
				enoughItems(2),
				func(s []float64) *Error {
					base := s[len(s)-2]
					if !(base > 0 && base != 1) {
						return newError(ErrDomainViolation, "log base should be greater than 0 and not equal to 1")
					}
					return nil
				},
				func(s []float64) *Error {
					if !(s[len(s)-1] > 0) {
						return newError(ErrDomainViolation, "number from which you take log should be greater than 0")
					}
					return nil
				},
			},
			apply: binary(func(base, value float64) float64 {
				return math.Log(value) / math.Log(base)
			}),
		}
	case FnLn:
		return rule{
			checks: []check{
				enoughItems(1),
				func(s []float64) *Error {
					if !(s[len(s)-1] > 0) {
						return newError(ErrDomainViolation, "number from which you take log should be greater than 0")
					}
					return nil
				},
			},
			apply: unary(math.Log),
		}
	case FnFact:
		return rule{
			checks: []check{
				enoughItems(1),
				func(s []float64) *Error {
					if !isInteger(s[len(s)-1]) {
						return newError(ErrDomainViolation, "factorial can only accept integers")
					}
					return nil
				},
			},
			apply: unary(factorial),
		}
	case FnPow:
		return rule{
			checks: []check{
				enoughItems(2),
				func(s []float64) *Error {
					base, power := s[len(s)-2], s[len(s)-1]
					if !isInteger(power) && base < 0 {
						return newError(ErrDomainViolation, "negative numbers can have only integer powers")
					}
					return nil
				},
			},
			apply: binary(pow),
		}
	case FnRoot:
		return rule{
			checks: []check{
				enoughItems(2),
				func(s []float64) *Error {
					if !rootDefined(s[len(s)-2], s[len(s)-1]) {
						return newError(ErrDomainViolation, "even and not integer roots of negative numbers are undefined")
					}
					return nil
				},
			},
			apply: binary(realRoot),
		}
	}
	panic(fmt.Sprintf("unknown function %d", int(fn)))
}
