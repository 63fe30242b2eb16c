package command

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/EmekaIwuagwu/articium-hub/cli/flags"
	"github.com/EmekaIwuagwu/articium-hub/factory"
	"github.com/EmekaIwuagwu/articium-hub/orchestrator"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

type runBuilder func(config factory.DeploymentRunConfig, stdout io.Writer) (factory.DeploymentRun, error)

type DeployAllCommand struct {
	stdout   io.Writer
	buildRun runBuilder
}

func NewDeployAllCommand() DeployAllCommand {
	return DeployAllCommand{stdout: os.Stdout, buildRun: factory.BuildDeploymentRun}
}

func (d DeployAllCommand) Flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "targets-file, f",
			Value: "",
			Usage: "YAML file listing the networks to deploy to (defaults to the built-in testnets)",
		},
		cli.StringSliceFlag{
			Name:  "network, n",
			Usage: "Only deploy to this network; repeat to deploy to several, in the given order",
		},
		cli.StringFlag{
			Name:  "delay",
			Value: "5s",
			Usage: "Time to wait between consecutive deployments",
		},
		cli.StringFlag{
			Name:  "project-dir",
			Value: ".",
			Usage: "Hardhat project directory",
		},
		cli.StringFlag{
			Name:  "script",
			Value: "scripts/deploy.js",
			Usage: "Deployment script run for each network",
		},
		cli.StringFlag{
			Name:  "runner",
			Value: "npx",
			Usage: "Executable used to invoke hardhat",
		},
		cli.StringFlag{
			Name:   "env-file",
			Value:  "",
			EnvVar: "DEPLOY_ALL_ENV_FILE",
			Usage:  "Dotenv file with variables for the deployment script",
		},
		cli.BoolFlag{
			Name:  "skip-chain-id-check",
			Usage: "Do not check the chain id reported by a network's rpc_url before deploying",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable coloured output",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs",
		},
	}
}

func (d DeployAllCommand) Before(c *cli.Context) error {
	return flags.Validate([]string{"delay", "project-dir", "script", "runner"}, c)
}

func (d DeployAllCommand) Action(c *cli.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = processUnexpectedError(errors.Errorf("unexpected failure: %v", r), debug.Stack())
		}
	}()

	run, err := d.buildRun(factory.DeploymentRunConfig{
		TargetsFile:      c.String("targets-file"),
		Networks:         c.StringSlice("network"),
		Delay:            c.String("delay"),
		ProjectDir:       c.String("project-dir"),
		Script:           c.String("script"),
		Runner:           c.String("runner"),
		EnvFile:          c.String("env-file"),
		SkipChainIDCheck: c.Bool("skip-chain-id-check"),
		Color:            !c.Bool("no-color"),
		Debug:            c.Bool("debug"),
	}, d.stdout)
	if err != nil {
		return redCliError(err)
	}

	ctx, stop := trapSignals(d.stdout)
	defer stop()

	run.Reporter.Banner()

	results, err := run.Orchestrator.Run(ctx, run.Targets)
	if err != nil {
		return redCliError(err)
	}

	if failed := orchestrator.CountFailed(results); failed > 0 {
		fmt.Fprintf(d.stdout, "\n"+someDeploymentsFailed+"\n", failed)
	} else {
		fmt.Fprintln(d.stdout, "\n"+allDeploymentsSucceeded)
	}
	run.Reporter.NextSteps()

	return cli.NewExitError("", 0)
}
