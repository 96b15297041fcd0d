package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sum adds at run time. Folding the discount constants at compile time would
// give the exact decimal sum, which is not what CalculateDiscount returns.
func sum(a, b float64) float64 {
	return a + b
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"positive operands", 5, 3, 8},
		{"negative first operand", -1, 5, 0},
		{"negative second operand", 0, -1, 0},
		{"both negative", -2, -3, 0},
		{"zero operands", 0, 0, 0},
		{"zero and positive", 0, 7, 7},
		{"positive and zero", 7, 0, 7},
		{"large operands", 1_000_000, 2_000_000, 3_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.a, tt.b), "Add(%d, %d)", tt.a, tt.b)
		})
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"exact quotient", 10, 2, 5},
		{"divide by zero", 10, 0, 0},
		{"zero by zero", 0, 0, 0},
		{"truncates positive", 7, 2, 3},
		{"truncates negative toward zero", -7, 2, -3},
		{"negative divisor", 7, -2, -3},
		{"both negative", -7, -2, 3},
		{"divisor of one", 9, 1, 9},
		{"min int by minus one wraps", math.MinInt, -1, math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Divide(tt.a, tt.b), "Divide(%d, %d)", tt.a, tt.b)
		})
	}
}

func TestIsEven(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{4, true},
		{5, false},
		{0, true},
		{1, false},
		{-2, true},
		{-3, false},
		{-4, true},
		{math.MinInt, true},
		{math.MaxInt, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsEven(tt.n), "IsEven(%d)", tt.n)
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score int
		want  Letter
	}{
		{100, LetterA},
		{90, LetterA},
		{89, LetterB},
		{80, LetterB},
		{79, LetterC},
		{70, LetterC},
		{69, LetterF},
		{0, LetterF},
		{-5, LetterF},
		{150, LetterA},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.score), "Grade(%d)", tt.score)
	}
}

func TestCalculateDiscount(t *testing.T) {
	tests := []struct {
		name   string
		age    int
		amount float64
		want   float64
	}{
		{"senior with large purchase", 70, 150, 0.20},
		{"child", 10, 50, 0.10},
		{"adult", 30, 50, 0.0},
		{"senior", 70, 50, 0.15},
		{"child with large purchase", 10, 150, sum(ChildDiscount, LargePurchaseBonus)},
		{"first senior age with first large amount", 65, 101, 0.20},
		{"last adult age with first large amount", 64, 101, 0.05},
		{"last child age", 12, 50, 0.10},
		{"first adult age", 13, 50, 0.0},
		{"amount at threshold earns no bonus", 70, 100, 0.15},
		{"fractional amount above threshold", 30, 100.01, 0.05},
		{"newborn", 0, 0, 0.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDiscount(tt.age, tt.amount)
			assert.Equal(t, tt.want, got, "CalculateDiscount(%d, %v)", tt.age, tt.amount)
		})
	}
}

func TestCalculateDiscount_SeniorBonusIsExactlyTwentyPercent(t *testing.T) {
	// 0.15 + 0.05 lands exactly on the float64 nearest 0.20; 0.10 + 0.05 does not
	// land on 0.15.
	assert.Equal(t, 0.20, sum(SeniorDiscount, LargePurchaseBonus))
	assert.NotEqual(t, 0.15, sum(ChildDiscount, LargePurchaseBonus))
}

func TestIsValidScore(t *testing.T) {
	tests := []struct {
		score int
		want  bool
	}{
		{0, true},
		{100, true},
		{50, true},
		{-1, false},
		{101, false},
		{math.MinInt, false},
		{math.MaxInt, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidScore(tt.score), "IsValidScore(%d)", tt.score)
	}
}

func TestLetterValues(t *testing.T) {
	assert.Equal(t, "A", string(LetterA))
	assert.Equal(t, "B", string(LetterB))
	assert.Equal(t, "C", string(LetterC))
	assert.Equal(t, "F", string(LetterF))
}
