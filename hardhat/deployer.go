package hardhat

import (
	"context"
	"fmt"
	"strings"

	"github.com/EmekaIwuagwu/articium-hub/target"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

const logTag = "hardhat"

type Logger interface {
	Debug(tag, msg string, args ...interface{})
	Info(tag, msg string, args ...interface{})
}

type Config struct {
	Runner     string
	Script     string
	ProjectDir string
	Env        map[string]string
}

// Deployer runs the project's deployment script once per network through the
// hardhat `run` task.
type Deployer struct {
	cmdRunner boshsys.CmdRunner
	config    Config
	logger    Logger
}

func NewDeployer(cmdRunner boshsys.CmdRunner, config Config, logger Logger) Deployer {
	return Deployer{
		cmdRunner: cmdRunner,
		config:    config,
		logger:    logger,
	}
}

func (d Deployer) Deploy(ctx context.Context, t target.Target) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "deployment to %s not started", t.Name)
	}

	command := d.command(t)
	d.logger.Info(logTag, "Running %s %s in %s", command.Name, strings.Join(command.Args, " "), command.WorkingDir)

	stdout, stderr, exitCode, err := d.cmdRunner.RunComplexCommand(command)
	d.logOutput(t, stdout, stderr)

	if err != nil && exitCode < 0 {
		return errors.Wrapf(err, "failed to run deployment script for %s", t.Name)
	}
	if exitCode != 0 {
		return exitError(stderr, exitCode)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to run deployment script for %s", t.Name)
	}

	return nil
}

func (d Deployer) command(t target.Target) boshsys.Command {
	return boshsys.Command{
		Name:       d.config.Runner,
		Args:       []string{"hardhat", "run", d.config.Script, "--network", t.Name},
		Env:        d.config.Env,
		WorkingDir: d.config.ProjectDir,
	}
}

func (d Deployer) logOutput(t target.Target, stdout, stderr string) {
	d.logger.Debug(logTag, "[%s] stdout: %s", t.Name, stdout)
	d.logger.Debug(logTag, "[%s] stderr: %s", t.Name, stderr)
}

func exitError(stderr string, exitCode int) error {
	message := strings.TrimSpace(stderr)
	if message == "" {
		message = "deployment script failed"
	}
	return errors.New(fmt.Sprintf("%s - exit code %d", message, exitCode))
}
