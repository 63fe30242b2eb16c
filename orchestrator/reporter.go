package orchestrator

import (
	"time"

	"github.com/EmekaIwuagwu/articium-hub/target"
)

//counterfeiter:generate -o fakes/fake_reporter.go . Reporter
type Reporter interface {
	TargetStarted(t target.Target, index, total int)
	TargetFinished(result Result)
	Waiting(next target.Target, interval time.Duration)
	Summary(results []Result)
}
