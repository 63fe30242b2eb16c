package factory

import (
	"io"

	"github.com/EmekaIwuagwu/articium-hub/chainid"
	"github.com/EmekaIwuagwu/articium-hub/hardhat"
	"github.com/EmekaIwuagwu/articium-hub/orchestrator"
	"github.com/EmekaIwuagwu/articium-hub/ratelimiter"
	"github.com/EmekaIwuagwu/articium-hub/reporter"
	"github.com/EmekaIwuagwu/articium-hub/target"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type DeploymentRunConfig struct {
	TargetsFile      string
	Networks         []string
	Delay            string
	ProjectDir       string
	Script           string
	Runner           string
	EnvFile          string
	SkipChainIDCheck bool
	Color            bool
	Debug            bool
}

type DeploymentRun struct {
	Orchestrator orchestrator.Orchestrator
	Targets      []target.Target
	Reporter     *reporter.ConsoleReporter
	Logger       boshlog.Logger
}

func BuildDeploymentRun(config DeploymentRunConfig, stdout io.Writer) (DeploymentRun, error) {
	logger := BuildLogger(config.Debug)
	return BuildDeploymentRunWithLogger(config, stdout, logger, boshsys.NewExecCmdRunner(logger))
}

func BuildDeploymentRunWithLogger(config DeploymentRunConfig, stdout io.Writer, logger boshlog.Logger, cmdRunner boshsys.CmdRunner) (DeploymentRun, error) {
	targets, err := buildTargets(config.TargetsFile, config.Networks)
	if err != nil {
		return DeploymentRun{}, err
	}

	rateLimiter, err := ratelimiter.NewIntervalRateLimiter(config.Delay)
	if err != nil {
		return DeploymentRun{}, err
	}

	env, err := hardhat.LoadEnv(config.EnvFile)
	if err != nil {
		return DeploymentRun{}, err
	}

	var deployer orchestrator.Deployer = hardhat.NewDeployer(cmdRunner, hardhat.Config{
		Runner:     config.Runner,
		Script:     config.Script,
		ProjectDir: config.ProjectDir,
		Env:        env,
	}, logger)

	if !config.SkipChainIDCheck {
		deployer = chainid.NewCheckingDeployer(deployer, logger)
	}

	consoleReporter := reporter.NewConsoleReporter(stdout, config.Color)

	return DeploymentRun{
		Orchestrator: orchestrator.NewOrchestrator(deployer, rateLimiter, consoleReporter, logger),
		Targets:      targets,
		Reporter:     consoleReporter,
		Logger:       logger,
	}, nil
}

func buildTargets(targetsFile string, networks []string) ([]target.Target, error) {
	targets := target.DefaultTestnets()
	if targetsFile != "" {
		var err error
		targets, err = target.Load(targetsFile)
		if err != nil {
			return nil, err
		}
	}

	return target.Select(targets, networks)
}
