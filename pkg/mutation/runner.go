package mutation

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
)

// ErrReferenceFailed is returned by Run when a check fails against the
// unmutated calculator. Such a suite cannot judge mutants.
var ErrReferenceFailed = errors.New("suite fails against the reference calculator")

// Result is the outcome of running a suite against one mutant.
type Result struct {
	Mutant Mutant
	// KilledBy names the first check that failed, empty if the mutant survived.
	KilledBy string
	// Err is the failure reported by KilledBy.
	Err error
}

// Killed reports whether some check failed against the mutant.
func (r Result) Killed() bool {
	return r.KilledBy != ""
}

// Report collects the results of one suite against a set of mutants.
type Report struct {
	Suite   string
	Results []Result
}

// Killed returns the results of killed mutants.
func (r Report) Killed() []Result {
	var killed []Result
	for _, res := range r.Results {
		if res.Killed() {
			killed = append(killed, res)
		}
	}
	return killed
}

// Survivors returns the results of mutants no check detected.
func (r Report) Survivors() []Result {
	var survivors []Result
	for _, res := range r.Results {
		if !res.Killed() {
			survivors = append(survivors, res)
		}
	}
	return survivors
}

// Score is the fraction of mutants killed. It is 0 for an empty report.
func (r Report) Score() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(len(r.Killed())) / float64(len(r.Results))
}

// ByOperation breaks the report down per calculator function. Operations
// without mutants are omitted.
func (r Report) ByOperation() map[Operation]Report {
	byOp := make(map[Operation]Report)
	for _, res := range r.Results {
		op := res.Mutant.Operation
		sub := byOp[op]
		sub.Suite = r.Suite
		sub.Results = append(sub.Results, res)
		byOp[op] = sub
	}
	return byOp
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %d/%d mutants killed (%.0f%%), %d survived",
		r.Suite, len(r.Killed()), len(r.Results), r.Score()*100, len(r.Survivors()))
}

// Run verifies the suite against the reference calculator and then runs it
// against each mutant. A panic inside a check, such as an integer division by
// zero, counts as a failure.
func Run(suite Suite, mutants []Mutant) (Report, error) {
	reference := Reference()
	for _, check := range suite.Checks {
		if err := runCheck(check, reference); err != nil {
			return Report{}, fmt.Errorf("%w: %s: %v", ErrReferenceFailed, check.Name, err)
		}
	}

	report := Report{Suite: suite.Name, Results: make([]Result, 0, len(mutants))}
	for _, m := range mutants {
		res := Result{Mutant: m}
		for _, check := range suite.Checks {
			if err := runCheck(check, m.Calculator); err != nil {
				glog.V(2).Infof("[%s] check %q failed on %s: %v", suite.Name, check.Name, m.Name, err)
				res.KilledBy = check.Name
				res.Err = err
				break
			}
		}

		if res.Killed() {
			glog.V(1).Infof("[%s] killed %s (%s) by %q", suite.Name, m.Name, m.Description, res.KilledBy)
		} else {
			glog.Warningf("[%s] survived %s (%s)", suite.Name, m.Name, m.Description)
		}
		report.Results = append(report.Results, res)
	}

	glog.Infof("%s", report)
	return report, nil
}

func runCheck(check Check, c Calculator) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return check.Fn(c)
}
