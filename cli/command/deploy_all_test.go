package command

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/EmekaIwuagwu/articium-hub/factory"
	"github.com/EmekaIwuagwu/articium-hub/orchestrator"
	"github.com/EmekaIwuagwu/articium-hub/ratelimiter"
	"github.com/EmekaIwuagwu/articium-hub/reporter"
	"github.com/EmekaIwuagwu/articium-hub/target"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/urfave/cli"
)

var _ = Describe("DeployAllCommand", func() {
	var (
		stdout   *gbytes.Buffer
		workDir  string
		deployer orchestrator.Deployer
		buildErr error
		config   factory.DeploymentRunConfig
		args     []string
		runErr   error
	)

	BeforeEach(func() {
		stdout = gbytes.NewBuffer()
		buildErr = nil
		args = []string{"--no-color", "--delay", "0s"}
		deployer = orchestrator.DeployFunc(func(context.Context, target.Target) error {
			return nil
		})

		originalDir, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		workDir, err = os.MkdirTemp("", "deploy-all-command")
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(workDir)).To(Succeed())
		DeferCleanup(func() {
			Expect(os.Chdir(originalDir)).To(Succeed())
			Expect(os.RemoveAll(workDir)).To(Succeed())
		})
	})

	JustBeforeEach(func() {
		command := DeployAllCommand{
			stdout: stdout,
			buildRun: func(c factory.DeploymentRunConfig, w io.Writer) (factory.DeploymentRun, error) {
				config = c
				if buildErr != nil {
					return factory.DeploymentRun{}, buildErr
				}
				logger := boshlog.NewWriterLogger(boshlog.LevelDebug, GinkgoWriter)
				console := reporter.NewConsoleReporter(w, c.Color)
				return factory.DeploymentRun{
					Orchestrator: orchestrator.NewOrchestrator(deployer, ratelimiter.NewNoOpRateLimiter(), console, logger),
					Targets:      []target.Target{{Name: "polygon-amoy", ChainID: 80002}, {Name: "bnb-testnet", ChainID: 97}},
					Reporter:     console,
					Logger:       logger,
				}, nil
			},
		}

		set := flag.NewFlagSet("deploy-all", flag.ContinueOnError)
		for _, f := range command.Flags() {
			f.Apply(set)
		}
		Expect(set.Parse(args)).To(Succeed())

		runErr = command.Action(cli.NewContext(cli.NewApp(), set, nil))
	})

	exitCode := func() int {
		var exitErr *cli.ExitError
		Expect(errors.As(runErr, &exitErr)).To(BeTrue())
		return exitErr.ExitCode()
	}

	stackTraceFiles := func() []string {
		files, err := filepath.Glob(filepath.Join(workDir, "deploy-all-*.err.log"))
		Expect(err).NotTo(HaveOccurred())
		return files
	}

	Context("when every deployment succeeds", func() {
		It("exits zero and prints the closing message", func() {
			Expect(exitCode()).To(Equal(0))
			Expect(stdout).To(gbytes.Say("polygon-amoy deployed"))
			Expect(stdout).To(gbytes.Say("bnb-testnet deployed"))
			Expect(stdout).To(gbytes.Say("All testnet deployments completed!"))
			Expect(stdout).To(gbytes.Say("Next steps:"))
		})

		It("passes the flags through to the run", func() {
			Expect(config.Delay).To(Equal("0s"))
			Expect(config.Runner).To(Equal("npx"))
			Expect(config.Script).To(Equal("scripts/deploy.js"))
			Expect(config.Color).To(BeFalse())
		})
	})

	Context("when a deployment fails", func() {
		BeforeEach(func() {
			deployer = orchestrator.DeployFunc(func(_ context.Context, t target.Target) error {
				if t.Name == "bnb-testnet" {
					return errors.New("RPC timeout")
				}
				return nil
			})
		})

		It("still exits zero and counts the failure", func() {
			Expect(exitCode()).To(Equal(0))
			Expect(stdout).To(gbytes.Say("completed with 1 failure"))
		})
	})

	Context("when the run cannot be built", func() {
		BeforeEach(func() {
			buildErr = target.NewListError(errors.New("unknown network(s): base-sepolia"))
		})

		It("exits one without deploying", func() {
			Expect(exitCode()).To(Equal(1))
			Expect(runErr).To(MatchError(ContainSubstring("unknown network(s): base-sepolia")))
			Expect(stdout.Contents()).To(BeEmpty())
		})
	})

	Context("when a deployment panics", func() {
		BeforeEach(func() {
			deployer = orchestrator.DeployFunc(func(context.Context, target.Target) error {
				panic("nonce manager corrupted")
			})
		})

		It("exits one with the panic message", func() {
			Expect(exitCode()).To(Equal(1))
			Expect(runErr).To(MatchError(ContainSubstring("unexpected failure: nonce manager corrupted")))
		})

		It("writes the stack trace to a file in the working directory", func() {
			files := stackTraceFiles()
			Expect(files).To(HaveLen(1))

			contents, err := os.ReadFile(files[0])
			Expect(err).NotTo(HaveOccurred())
			Expect(string(contents)).To(ContainSubstring("unexpected failure: nonce manager corrupted"))
			Expect(string(contents)).To(ContainSubstring("goroutine"))
		})
	})

	Context("when nothing goes wrong", func() {
		It("does not write a stack trace file", func() {
			Expect(stackTraceFiles()).To(BeEmpty())
		})
	})
})
