package orchestrator

import (
	"strings"

	"github.com/EmekaIwuagwu/articium-hub/target"
)

const unknownFailureMessage = "deployment failed"

type Outcome int

const (
	Success Outcome = iota
	Failed
)

func (o Outcome) String() string {
	if o == Failed {
		return "Failed"
	}
	return "Success"
}

// Result records how the deployment to one target went. ErrorMessage is set
// if and only if Outcome is Failed.
type Result struct {
	Target       target.Target
	Outcome      Outcome
	ErrorMessage string
}

func NewSuccessResult(t target.Target) Result {
	return Result{Target: t, Outcome: Success}
}

func NewFailedResult(t target.Target, err error) Result {
	message := err.Error()
	if strings.TrimSpace(message) == "" {
		message = unknownFailureMessage
	}
	return Result{Target: t, Outcome: Failed, ErrorMessage: message}
}

func (r Result) Succeeded() bool {
	return r.Outcome == Success
}

func CountFailed(results []Result) int {
	failed := 0
	for _, result := range results {
		if !result.Succeeded() {
			failed++
		}
	}
	return failed
}
