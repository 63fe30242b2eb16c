package orchestrator

import (
	"context"

	"github.com/EmekaIwuagwu/articium-hub/target"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_deployer.go . Deployer
type Deployer interface {
	Deploy(ctx context.Context, t target.Target) error
}

type DeployFunc func(ctx context.Context, t target.Target) error

func (f DeployFunc) Deploy(ctx context.Context, t target.Target) error {
	return f(ctx, t)
}
