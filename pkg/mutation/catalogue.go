package mutation

import "github.com/hdwhdw/coverage-gap/pkg/calculator"

// Mutant is the reference calculator with one function replaced by a variant
// that differs from the original by a single change.
type Mutant struct {
	Name        string
	Operation   Operation
	Description string
	Calculator  Calculator
}

func mutate(op Operation, name, description string, swap func(c *Calculator)) Mutant {
	c := Reference()
	swap(&c)
	return Mutant{
		Name:        string(op) + "/" + name,
		Operation:   op,
		Description: description,
		Calculator:  c,
	}
}

// Catalogue returns every mutant, grouped by operation in declaration order.
// Equivalent mutants, which no test could tell apart from the original, are
// left out so a full-strength suite scores exactly 1.
func Catalogue() []Mutant {
	var mutants []Mutant
	mutants = append(mutants, addMutants()...)
	mutants = append(mutants, divideMutants()...)
	mutants = append(mutants, isEvenMutants()...)
	mutants = append(mutants, gradeMutants()...)
	mutants = append(mutants, discountMutants()...)
	mutants = append(mutants, isValidScoreMutants()...)
	return mutants
}

func addMutants() []Mutant {
	return []Mutant{
		mutate(OpAdd, "first-boundary", "a < 0 becomes a <= 0", func(c *Calculator) {
			c.Add = func(a, b int) int {
				if a <= 0 || b < 0 {
					return 0
				}
				return a + b
			}
		}),
		mutate(OpAdd, "second-boundary", "b < 0 becomes b <= 0", func(c *Calculator) {
			c.Add = func(a, b int) int {
				if a < 0 || b <= 0 {
					return 0
				}
				return a + b
			}
		}),
		mutate(OpAdd, "first-constant", "a < 0 becomes a < -1", func(c *Calculator) {
			c.Add = func(a, b int) int {
				if a < -1 || b < 0 {
					return 0
				}
				return a + b
			}
		}),
		mutate(OpAdd, "second-constant", "b < 0 becomes b < -1", func(c *Calculator) {
			c.Add = func(a, b int) int {
				if a < 0 || b < -1 {
					return 0
				}
				return a + b
			}
		}),
		mutate(OpAdd, "conjunction", "|| becomes &&", func(c *Calculator) {
			c.Add = func(a, b int) int {
				if a < 0 && b < 0 {
					return 0
				}
				return a + b
			}
		}),
		mutate(OpAdd, "no-guard", "negative operand check removed", func(c *Calculator) {
			c.Add = func(a, b int) int {
				return a + b
			}
		}),
		mutate(OpAdd, "subtract", "a + b becomes a - b", func(c *Calculator) {
			c.Add = func(a, b int) int {
				if a < 0 || b < 0 {
					return 0
				}
				return a - b
			}
		}),
		mutate(OpAdd, "fallback", "rejected operands return 1 instead of 0", func(c *Calculator) {
			c.Add = func(a, b int) int {
				if a < 0 || b < 0 {
					return 1
				}
				return a + b
			}
		}),
	}
}

func divideMutants() []Mutant {
	return []Mutant{
		mutate(OpDivide, "negated-guard", "b == 0 becomes b != 0", func(c *Calculator) {
			c.Divide = func(a, b int) int {
				if b != 0 {
					return 0
				}
				return a / b
			}
		}),
		mutate(OpDivide, "constant-up", "b == 0 becomes b == 1", func(c *Calculator) {
			c.Divide = func(a, b int) int {
				if b == 1 {
					return 0
				}
				return a / b
			}
		}),
		mutate(OpDivide, "constant-down", "b == 0 becomes b == -1", func(c *Calculator) {
			c.Divide = func(a, b int) int {
				if b == -1 {
					return 0
				}
				return a / b
			}
		}),
		mutate(OpDivide, "no-guard", "zero divisor check removed", func(c *Calculator) {
			c.Divide = func(a, b int) int {
				return a / b
			}
		}),
		mutate(OpDivide, "multiply", "a / b becomes a * b", func(c *Calculator) {
			c.Divide = func(a, b int) int {
				if b == 0 {
					return 0
				}
				return a * b
			}
		}),
		mutate(OpDivide, "modulo", "a / b becomes a % b", func(c *Calculator) {
			c.Divide = func(a, b int) int {
				if b == 0 {
					return 0
				}
				return a % b
			}
		}),
		mutate(OpDivide, "floor", "truncation toward zero becomes floor division", func(c *Calculator) {
			c.Divide = func(a, b int) int {
				if b == 0 {
					return 0
				}
				q := a / b
				if (a%b != 0) && ((a < 0) != (b < 0)) {
					q--
				}
				return q
			}
		}),
		mutate(OpDivide, "fallback", "zero divisor returns 1 instead of 0", func(c *Calculator) {
			c.Divide = func(a, b int) int {
				if b == 0 {
					return 1
				}
				return a / b
			}
		}),
	}
}

func isEvenMutants() []Mutant {
	return []Mutant{
		mutate(OpIsEven, "negated", "n%2 == 0 becomes n%2 != 0", func(c *Calculator) {
			c.IsEven = func(n int) bool { return n%2 != 0 }
		}),
		mutate(OpIsEven, "constant-up", "n%2 == 0 becomes n%2 == 1", func(c *Calculator) {
			c.IsEven = func(n int) bool { return n%2 == 1 }
		}),
		mutate(OpIsEven, "constant-down", "n%2 == 0 becomes n%2 == -1", func(c *Calculator) {
			c.IsEven = func(n int) bool { return n%2 == -1 }
		}),
		mutate(OpIsEven, "modulus", "n%2 becomes n%3", func(c *Calculator) {
			c.IsEven = func(n int) bool { return n%3 == 0 }
		}),
		mutate(OpIsEven, "odd-check", "n%2 == 0 becomes n%2 != 1", func(c *Calculator) {
			c.IsEven = func(n int) bool { return n%2 != 1 }
		}),
		mutate(OpIsEven, "true", "always returns true", func(c *Calculator) {
			c.IsEven = func(int) bool { return true }
		}),
		mutate(OpIsEven, "false", "always returns false", func(c *Calculator) {
			c.IsEven = func(int) bool { return false }
		}),
	}
}

func atLeast(bound int) func(int) bool {
	return func(score int) bool { return score >= bound }
}

func above(bound int) func(int) bool {
	return func(score int) bool { return score > bound }
}

func tiers(a, b, c func(int) bool) func(int) calculator.Letter {
	return func(score int) calculator.Letter {
		if a(score) {
			return calculator.LetterA
		}
		if b(score) {
			return calculator.LetterB
		}
		if c(score) {
			return calculator.LetterC
		}
		return calculator.LetterF
	}
}

func gradeMutants() []Mutant {
	const (
		a = calculator.ThresholdA
		b = calculator.ThresholdB
		c = calculator.ThresholdC
	)

	grade := func(name, description string, fn func(int) calculator.Letter) Mutant {
		return mutate(OpGrade, name, description, func(calc *Calculator) {
			calc.Grade = fn
		})
	}

	never := func(int) bool { return false }

	return []Mutant{
		grade("A-boundary", "score >= 90 becomes score > 90", tiers(above(a), atLeast(b), atLeast(c))),
		grade("B-boundary", "score >= 80 becomes score > 80", tiers(atLeast(a), above(b), atLeast(c))),
		grade("C-boundary", "score >= 70 becomes score > 70", tiers(atLeast(a), atLeast(b), above(c))),
		grade("A-constant-up", "90 becomes 91", tiers(atLeast(a+1), atLeast(b), atLeast(c))),
		grade("A-constant-down", "90 becomes 89", tiers(atLeast(a-1), atLeast(b), atLeast(c))),
		grade("B-constant-up", "80 becomes 81", tiers(atLeast(a), atLeast(b+1), atLeast(c))),
		grade("B-constant-down", "80 becomes 79", tiers(atLeast(a), atLeast(b-1), atLeast(c))),
		grade("C-constant-up", "70 becomes 71", tiers(atLeast(a), atLeast(b), atLeast(c+1))),
		grade("C-constant-down", "70 becomes 69", tiers(atLeast(a), atLeast(b), atLeast(c-1))),
		grade("no-A", "A tier removed", tiers(never, atLeast(b), atLeast(c))),
		grade("no-B", "B tier removed", tiers(atLeast(a), never, atLeast(c))),
		grade("no-C", "C tier removed", tiers(atLeast(a), atLeast(b), never)),
		grade("empty", "returns the empty grade", func(int) calculator.Letter { return "" }),
	}
}

// discountRule spells out CalculateDiscount piece by piece so each mutant
// replaces exactly one piece.
type discountRule struct {
	senior     func(age int) bool
	child      func(age int) bool
	large      func(amount float64) bool
	seniorRate float64
	childRate  float64
	bonus      float64
	stack      func(discount, bonus float64) float64
}

func referenceDiscount() discountRule {
	return discountRule{
		senior:     func(age int) bool { return age >= calculator.SeniorAge },
		child:      func(age int) bool { return age <= calculator.ChildAge },
		large:      func(amount float64) bool { return amount > calculator.LargePurchaseAmount },
		seniorRate: calculator.SeniorDiscount,
		childRate:  calculator.ChildDiscount,
		bonus:      calculator.LargePurchaseBonus,
		stack:      func(discount, bonus float64) float64 { return discount + bonus },
	}
}

func (r discountRule) apply(age int, amount float64) float64 {
	discount := 0.0
	if r.senior(age) {
		discount = r.seniorRate
	} else if r.child(age) {
		discount = r.childRate
	}
	if r.large(amount) {
		discount = r.stack(discount, r.bonus)
	}
	return discount
}

func discountMutants() []Mutant {
	discount := func(name, description string, change func(r *discountRule)) Mutant {
		r := referenceDiscount()
		change(&r)
		return mutate(OpCalculateDiscount, name, description, func(c *Calculator) {
			c.CalculateDiscount = r.apply
		})
	}

	return []Mutant{
		discount("senior-boundary", "age >= 65 becomes age > 65", func(r *discountRule) {
			r.senior = func(age int) bool { return age > 65 }
		}),
		discount("senior-constant-up", "65 becomes 66", func(r *discountRule) {
			r.senior = func(age int) bool { return age >= 66 }
		}),
		discount("senior-constant-down", "65 becomes 64", func(r *discountRule) {
			r.senior = func(age int) bool { return age >= 64 }
		}),
		discount("child-boundary", "age <= 12 becomes age < 12", func(r *discountRule) {
			r.child = func(age int) bool { return age < 12 }
		}),
		discount("child-constant-up", "12 becomes 13", func(r *discountRule) {
			r.child = func(age int) bool { return age <= 13 }
		}),
		discount("child-constant-down", "12 becomes 11", func(r *discountRule) {
			r.child = func(age int) bool { return age <= 11 }
		}),
		discount("large-boundary", "amount > 100 becomes amount >= 100", func(r *discountRule) {
			r.large = func(amount float64) bool { return amount >= 100 }
		}),
		discount("large-constant-up", "100 becomes 101", func(r *discountRule) {
			r.large = func(amount float64) bool { return amount > 101 }
		}),
		discount("large-constant-down", "100 becomes 99", func(r *discountRule) {
			r.large = func(amount float64) bool { return amount > 99 }
		}),
		discount("no-senior", "senior discount removed", func(r *discountRule) {
			r.senior = func(int) bool { return false }
		}),
		discount("no-child", "child discount removed", func(r *discountRule) {
			r.child = func(int) bool { return false }
		}),
		discount("no-bonus", "large purchase bonus removed", func(r *discountRule) {
			r.large = func(float64) bool { return false }
		}),
		discount("senior-rate", "0.15 becomes 0.16", func(r *discountRule) {
			r.seniorRate = 0.16
		}),
		discount("child-rate", "0.10 becomes 0.11", func(r *discountRule) {
			r.childRate = 0.11
		}),
		discount("bonus-rate", "0.05 becomes 0.06", func(r *discountRule) {
			r.bonus = 0.06
		}),
		discount("replace-bonus", "discount += 0.05 becomes discount = 0.05", func(r *discountRule) {
			r.stack = func(_, bonus float64) float64 { return bonus }
		}),
		discount("subtract-bonus", "discount += 0.05 becomes discount -= 0.05", func(r *discountRule) {
			r.stack = func(discount, bonus float64) float64 { return discount - bonus }
		}),
	}
}

func isValidScoreMutants() []Mutant {
	valid := func(name, description string, fn func(int) bool) Mutant {
		return mutate(OpIsValidScore, name, description, func(c *Calculator) {
			c.IsValidScore = fn
		})
	}

	return []Mutant{
		valid("lower-boundary", "score >= 0 becomes score > 0", func(s int) bool { return s > 0 && s <= 100 }),
		valid("upper-boundary", "score <= 100 becomes score < 100", func(s int) bool { return s >= 0 && s < 100 }),
		valid("lower-constant", "0 becomes -1", func(s int) bool { return s >= -1 && s <= 100 }),
		valid("upper-constant", "100 becomes 101", func(s int) bool { return s >= 0 && s <= 101 }),
		valid("disjunction", "&& becomes ||", func(s int) bool { return s >= 0 || s <= 100 }),
		valid("no-lower", "lower bound check removed", func(s int) bool { return s <= 100 }),
		valid("no-upper", "upper bound check removed", func(s int) bool { return s >= 0 }),
		valid("true", "always returns true", func(int) bool { return true }),
		valid("false", "always returns false", func(int) bool { return false }),
	}
}
