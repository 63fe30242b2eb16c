package orchestrator

import (
	"context"

	"github.com/EmekaIwuagwu/articium-hub/target"
)

// TargetExecutable is the per-target error boundary: whatever the deployer
// returns is turned into a Result and never propagated.
type TargetExecutable struct {
	deployer Deployer
	target   target.Target
}

func NewTargetExecutable(deployer Deployer, t target.Target) TargetExecutable {
	return TargetExecutable{
		deployer: deployer,
		target:   t,
	}
}

func (e TargetExecutable) Execute(ctx context.Context) Result {
	if err := e.deployer.Deploy(ctx, e.target); err != nil {
		return NewFailedResult(e.target, err)
	}
	return NewSuccessResult(e.target)
}
