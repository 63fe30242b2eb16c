package orchestrator

import (
	"strings"

	"github.com/EmekaIwuagwu/articium-hub/target"
	"github.com/pkg/errors"
)

type InterruptedError struct {
	error
	Remaining []target.Target
}

func NewInterruptedError(remaining []target.Target, cause error) InterruptedError {
	return InterruptedError{
		error: errors.Wrapf(cause, "deployment run interrupted before: %s",
			strings.Join(target.Names(remaining), ", ")),
		Remaining: remaining,
	}
}

func (e InterruptedError) Cause() error {
	return errors.Cause(e.error)
}

func (e InterruptedError) Unwrap() error {
	return e.error
}
