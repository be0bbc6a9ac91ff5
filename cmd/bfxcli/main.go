package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/thrasher-corp/bfxrest/log"
	"github.com/thrasher-corp/bfxrest/signaler"
	"github.com/urfave/cli/v2"
)

var (
	configPath  string
	baseURL     string
	proxyURL    string
	timeout     time.Duration
	verbose     bool
	showMetrics bool
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "bfxcli"
	app.Usage = "command line interface for the Bitfinex v2 REST API"
	app.EnableBashCompletion = true
	// Slice values such as symbols=tBTCUSD,tETHUSD must reach the parser whole
	app.DisableSliceFlagSeparator = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to a yaml, json or toml config file",
			EnvVars:     []string{"BFX_CONFIG"},
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "url",
			Usage:       "override the REST base URL",
			Destination: &baseURL,
		},
		&cli.StringFlag{
			Name:        "proxy",
			Usage:       "route requests through a socks5:// proxy",
			Destination: &proxyURL,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "override the HTTP timeout",
			Destination: &timeout,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "log requests and responses",
			Destination: &verbose,
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "print request metrics to stderr on exit",
			Destination: &showMetrics,
		},
	}
	app.Commands = append(endpointCommands(),
		listEndpointsCommand,
		encryptConfigCommand,
		decryptConfigCommand,
	)
	app.After = func(c *cli.Context) error {
		if err := printMetrics(c.App.ErrWriter); err != nil {
			return err
		}
		_ = log.Sync()
		return nil
	}
	return app
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// Capture cancel for interrupt
		<-signaler.WaitForInterrupt()
		cancel()
		fmt.Fprintln(os.Stderr, "bfxcli interrupted")
		os.Exit(1)
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
