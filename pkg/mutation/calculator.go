// Package mutation checks how well an assertion suite pins down the
// calculator package. A suite is run against the real functions and then
// against hand-written mutants, each differing from the original by a single
// operator, constant or return value. A mutant is killed when at least one
// check fails against it; survivors show where the suite is too weak, no
// matter how many lines it executes.
package mutation

import "github.com/hdwhdw/coverage-gap/pkg/calculator"

// Operation names one of the calculator functions.
type Operation string

const (
	OpAdd               Operation = "Add"
	OpDivide            Operation = "Divide"
	OpIsEven            Operation = "IsEven"
	OpGrade             Operation = "Grade"
	OpCalculateDiscount Operation = "CalculateDiscount"
	OpIsValidScore      Operation = "IsValidScore"
)

// Operations lists every calculator function in declaration order.
var Operations = []Operation{
	OpAdd,
	OpDivide,
	OpIsEven,
	OpGrade,
	OpCalculateDiscount,
	OpIsValidScore,
}

// Calculator is a table of the calculator functions. Checks call through the
// table so the same check can run against the reference and every mutant.
type Calculator struct {
	Add               func(a, b int) int
	Divide            func(a, b int) int
	IsEven            func(n int) bool
	Grade             func(score int) calculator.Letter
	CalculateDiscount func(age int, amount float64) float64
	IsValidScore      func(score int) bool
}

// Reference returns the table bound to the calculator package.
func Reference() Calculator {
	return Calculator{
		Add:               calculator.Add,
		Divide:            calculator.Divide,
		IsEven:            calculator.IsEven,
		Grade:             calculator.Grade,
		CalculateDiscount: calculator.CalculateDiscount,
		IsValidScore:      calculator.IsValidScore,
	}
}
