package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/EmekaIwuagwu/articium-hub/orchestrator"
	"github.com/EmekaIwuagwu/articium-hub/target"
	"github.com/mgutz/ansi"
)

const ruleWidth = 60

var nextSteps = []string{
	"Check deployments/ directory for contract addresses",
	"Update config/config.testnet.yaml with all addresses",
	"Verify contracts on block explorers",
	"Test cross-chain transfers",
}

type ConsoleReporter struct {
	writer io.Writer
	color  bool
}

func NewConsoleReporter(writer io.Writer, color bool) *ConsoleReporter {
	return &ConsoleReporter{
		writer: writer,
		color:  color,
	}
}

func (r *ConsoleReporter) Banner() {
	r.println(strings.Repeat("=", 40))
	r.println("  Deploy to ALL Testnets")
	r.println(strings.Repeat("=", 40))
	r.println("")
}

func (r *ConsoleReporter) TargetStarted(t target.Target, index, total int) {
	r.println("")
	r.println(rule())
	r.printf("Deploying to %s (chain %d) [%d/%d]...\n", t.Name, t.ChainID, index+1, total)
	r.println(rule())
}

func (r *ConsoleReporter) TargetFinished(result orchestrator.Result) {
	if result.Succeeded() {
		r.println(r.paint(fmt.Sprintf("✅ %s deployed", result.Target.Name), "green"))
		return
	}
	r.println(r.paint(fmt.Sprintf("❌ Failed to deploy to %s: %s", result.Target.Name, result.ErrorMessage), "red"))
}

func (r *ConsoleReporter) Waiting(next target.Target, interval time.Duration) {
	if interval <= 0 {
		return
	}
	r.printf("\nWaiting %s before deploying to %s...\n", interval, next.Name)
}

func (r *ConsoleReporter) Summary(results []orchestrator.Result) {
	r.println("")
	r.println(rule())
	r.println("  DEPLOYMENT SUMMARY")
	r.println(rule())
	r.println("")

	for _, result := range results {
		r.printf("%s (%d): %s\n", result.Target.Name, result.Target.ChainID, r.status(result))
		if !result.Succeeded() {
			r.printf("  Error: %s\n", result.ErrorMessage)
		}
	}

	failed := orchestrator.CountFailed(results)
	r.println("")
	r.printf("%d succeeded, %d failed out of %d targets\n", len(results)-failed, failed, len(results))
}

func (r *ConsoleReporter) NextSteps() {
	r.println("")
	r.println("📋 Next steps:")
	for i, step := range nextSteps {
		r.printf("%d. %s\n", i+1, step)
	}
	r.println("")
}

func (r *ConsoleReporter) status(result orchestrator.Result) string {
	if result.Succeeded() {
		return r.paint("✅ Success", "green")
	}
	return r.paint("❌ Failed", "red")
}

func (r *ConsoleReporter) paint(text, style string) string {
	if !r.color {
		return text
	}
	return ansi.Color(text, style)
}

func (r *ConsoleReporter) println(line string) {
	fmt.Fprintln(r.writer, line)
}

func (r *ConsoleReporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, format, args...)
}

func rule() string {
	return strings.Repeat("=", ruleWidth)
}
