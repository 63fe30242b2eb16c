package main

import (
	"os"

	"github.com/EmekaIwuagwu/articium-hub/cli/command"
	"github.com/urfave/cli"
)

var version string

func main() {
	cli.AppHelpTemplate = helpTextTemplate

	deployAll := command.NewDeployAllCommand()

	app := cli.NewApp()

	app.Version = version

	app.Name = "Deploy to ALL Testnets"
	app.HelpName = "deploy-all"
	app.Usage = "Deploy the bridge contracts to every testnet, one network at a time"

	app.Flags = deployAll.Flags()
	app.Before = deployAll.Before
	app.Action = deployAll.Action

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
