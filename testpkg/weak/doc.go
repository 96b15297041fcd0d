// Package weak holds tests that execute every line of the calculator package
// while asserting almost nothing. Run them with -coverpkg=./pkg/calculator to
// see full line coverage; mutants_test.go shows how few mutants they kill.
package weak
