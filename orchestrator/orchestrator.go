package orchestrator

import (
	"context"
	"time"

	"github.com/EmekaIwuagwu/articium-hub/ratelimiter"
	"github.com/EmekaIwuagwu/articium-hub/target"
)

const logTag = "deploy-all"

type Orchestrator struct {
	deployer    Deployer
	rateLimiter ratelimiter.RateLimiter
	reporter    Reporter
	logger      Logger
}

func NewOrchestrator(deployer Deployer, rateLimiter ratelimiter.RateLimiter, reporter Reporter, logger Logger) Orchestrator {
	return Orchestrator{
		deployer:    deployer,
		rateLimiter: rateLimiter,
		reporter:    reporter,
		logger:      logger,
	}
}

// Run deploys to every target one after the other. Per-target failures end up
// in the returned results; the error is only set for a malformed target list
// (no results) or a cancelled context (partial results).
func (o Orchestrator) Run(ctx context.Context, targets []target.Target) ([]Result, error) {
	if err := target.Validate(targets); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(targets))
	total := len(targets)

	for index, t := range targets {
		if err := ctx.Err(); err != nil {
			return o.interrupted(results, targets[index:], err)
		}

		o.reporter.TargetStarted(t, index, total)
		o.logger.Info(logTag, "Deploying to %s (chain %d)", t.Name, t.ChainID)

		start := time.Now()
		result := NewTargetExecutable(o.deployer, t).Execute(ctx)
		results = append(results, result)

		o.logger.Debug(logTag, "Deployment to %s finished in %s: %s", t.Name, time.Since(start), result.Outcome)
		o.reporter.TargetFinished(result)

		if index == total-1 {
			break
		}

		next := targets[index+1]
		o.reporter.Waiting(next, o.rateLimiter.Interval())
		if err := o.rateLimiter.Wait(ctx); err != nil {
			return o.interrupted(results, targets[index+1:], err)
		}
	}

	o.logger.Info(logTag, "Finished %d deployment(s), %d failed", len(results), CountFailed(results))
	o.reporter.Summary(results)

	return results, nil
}

func (o Orchestrator) interrupted(results []Result, remaining []target.Target, cause error) ([]Result, error) {
	o.logger.Warn(logTag, "Deployment run interrupted, %d target(s) not attempted", len(remaining))
	o.reporter.Summary(results)
	return results, NewInterruptedError(remaining, cause)
}
