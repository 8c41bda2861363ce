package main

import (
	"context"
	"fmt"
	"os"

	"github.com/robert-osoelectronics/toggl-reports/internal/cli"
	"github.com/robert-osoelectronics/toggl-reports/internal/config"
	"github.com/robert-osoelectronics/toggl-reports/internal/repository/toggl"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitConfig
	}

	store := config.NewCredentialStore(cfg.Secrets.Path)
	factory := func(apiToken string) toggl.Repository {
		return config.CreateRepository(cfg, apiToken)
	}

	app := cli.NewApp(cfg, store, factory, os.Stdin, os.Stdout)
	root := cli.NewRootCommand(app)

	if err := root.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.UserMessage(err))
		return cli.ExitCode(err)
	}
	return cli.ExitOK
}
