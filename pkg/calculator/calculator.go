// Package calculator provides small business-rule functions whose value lies
// in their boundary conditions. Every function is pure: no state, no errors,
// no panics. Inputs a business rule rejects map to a fallback value instead.
package calculator

// Letter is a grade awarded for a score.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterF Letter = "F"
)

// Grade tier lower bounds, inclusive.
const (
	ThresholdA = 90
	ThresholdB = 80
	ThresholdC = 70
)

// Valid score range, both bounds inclusive.
const (
	MinScore = 0
	MaxScore = 100
)

const (
	// SeniorAge is the youngest age that receives SeniorDiscount.
	SeniorAge = 65
	// ChildAge is the oldest age that receives ChildDiscount.
	ChildAge = 12
	// LargePurchaseAmount must be strictly exceeded to earn LargePurchaseBonus.
	LargePurchaseAmount = 100

	SeniorDiscount     = 0.15
	ChildDiscount      = 0.10
	LargePurchaseBonus = 0.05
)

// The functions below are kept out of line so tests can patch them with
// gomonkey; an inlined call would bypass the patch.

// Add returns the sum of a and b, or 0 if either operand is negative.
//
//go:noinline
func Add(a, b int) int {
	if a < 0 || b < 0 {
		return 0
	}
	return a + b
}

// Divide returns a / b truncated toward zero, or 0 if b is zero.
//
//go:noinline
func Divide(a, b int) int {
	if b == 0 {
		return 0
	}
	return a / b
}

// IsEven reports whether n is divisible by two. Negative n is handled.
//
//go:noinline
func IsEven(n int) bool {
	return n%2 == 0
}

// Grade maps a score to a letter. A score on a tier boundary belongs to the
// higher tier.
//
//go:noinline
func Grade(score int) Letter {
	if score >= ThresholdA {
		return LetterA
	}
	if score >= ThresholdB {
		return LetterB
	}
	if score >= ThresholdC {
		return LetterC
	}
	return LetterF
}

// CalculateDiscount returns the discount rate for a customer of the given age
// spending amount. The age tiers are exclusive; the large purchase bonus
// stacks on top of either.
//
//go:noinline
func CalculateDiscount(age int, amount float64) float64 {
	discount := 0.0

	if age >= SeniorAge {
		discount = SeniorDiscount
	} else if age <= ChildAge {
		discount = ChildDiscount
	}

	if amount > LargePurchaseAmount {
		discount += LargePurchaseBonus
	}

	return discount
}

// IsValidScore reports whether score lies in [MinScore, MaxScore].
//
//go:noinline
func IsValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}
