package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/thrasher-corp/bfxrest/config"
	"github.com/thrasher-corp/bfxrest/exchanges/bitfinex"
	"github.com/thrasher-corp/bfxrest/exchanges/request"
	"github.com/thrasher-corp/bfxrest/log"
	"github.com/urfave/cli/v2"
)

var (
	registry *prometheus.Registry

	errPasswordUnset  = errors.New("set " + config.EnvConfigPassword + " to the config password")
	errTransformUsage = errors.New("expected <in> <out> arguments")
)

const paramFlagName = "param"

func newParamFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    paramFlagName,
		Aliases: []string{"p"},
		Usage:   "request parameter as key=value, repeatable; use either --param or -p within one command, not both",
	}
}

// endpointCommands returns one command per REST endpoint
func endpointCommands() []*cli.Command {
	all := bitfinex.Endpoints()
	cmds := make([]*cli.Command, len(all))
	for i, e := range all {
		cmds[i] = &cli.Command{
			Name:      string(e),
			Usage:     fmt.Sprintf("%s request to the %s endpoint", e.Kind(), e),
			ArgsUsage: "[--param key=value ...]",
			Flags:     []cli.Flag{newParamFlag()},
			Action:    callEndpoint(e),
		}
	}
	return cmds
}

func callEndpoint(e bitfinex.Endpoint) cli.ActionFunc {
	return func(c *cli.Context) error {
		p, err := buildParams(c.StringSlice(paramFlagName))
		if err != nil {
			return err
		}
		client, err := setupClient()
		if err != nil {
			return err
		}
		resp, err := client.Do(c.Context, e, p)
		if err != nil {
			return err
		}
		return jsonOutput(c.App.Writer, resp)
	}
}

// loadConfig reads the config file, applies the global flag overrides and
// validates the result
func loadConfig() (*config.Config, error) {
	cfg, err := config.Read(configPath)
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.URL = baseURL
	}
	if proxyURL != "" {
		cfg.Proxy = proxyURL
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	if verbose {
		cfg.Verbose = true
		cfg.Logging.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func setupClient() (*bitfinex.RESTv2, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := log.SetupGlobalLogger(cfg.Logging); err != nil {
		return nil, err
	}
	o, err := cfg.ClientOptions()
	if err != nil {
		return nil, err
	}
	registry = nil
	if showMetrics {
		registry = prometheus.NewRegistry()
		if o.Metrics, err = request.NewMetrics(registry); err != nil {
			return nil, err
		}
	}
	return bitfinex.New(o)
}

func jsonOutput(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", " "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// printMetrics writes the gathered request metrics in the text exposition
// format
func printMetrics(w io.Writer) error {
	if registry == nil {
		return nil
	}
	mfs, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

var listEndpointsCommand = &cli.Command{
	Name:  "endpoints",
	Usage: "lists every endpoint and its dispatch kind",
	Action: func(c *cli.Context) error {
		for _, e := range bitfinex.Endpoints() {
			if _, err := fmt.Fprintf(c.App.Writer, "%-22s %s\n", e, e.Kind()); err != nil {
				return err
			}
		}
		return nil
	},
}

var encryptConfigCommand = &cli.Command{
	Name:      "encryptconfig",
	Usage:     "encrypts a config file with the password in " + config.EnvConfigPassword,
	ArgsUsage: "<in> <out>",
	Action: func(c *cli.Context) error {
		return transformConfig(c, config.EncryptConfigData)
	},
}

var decryptConfigCommand = &cli.Command{
	Name:      "decryptconfig",
	Usage:     "decrypts a config file with the password in " + config.EnvConfigPassword,
	ArgsUsage: "<in> <out>",
	Action: func(c *cli.Context) error {
		return transformConfig(c, config.DecryptConfigData)
	},
}

func transformConfig(c *cli.Context, fn func(data, password []byte) ([]byte, error)) error {
	if c.NArg() != 2 {
		return errTransformUsage
	}
	pw := os.Getenv(config.EnvConfigPassword)
	if pw == "" {
		return errPasswordUnset
	}
	data, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}
	out, err := fn(data, []byte(pw))
	if err != nil {
		return err
	}
	return os.WriteFile(c.Args().Get(1), out, 0o600)
}
