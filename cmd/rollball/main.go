package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"github.com/lixenwraith/rollball/config"
	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/record"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, chalk.Red.Color("rollball: "+err.Error()))
		os.Exit(1)
	}
}

var playFlags = []cli.Flag{
	cli.StringFlag{Name: "config, c", Value: "", Usage: "YAML config file (default " + config.DefaultConfig + " when present)"},
	cli.StringFlag{Name: "mode", Value: "", Usage: "Initial debug mode: normal, distance, vision"},
	cli.StringFlag{Name: "record", Value: "", Usage: "Record telemetry frames to a " + config.RecordingExt + " file"},
	cli.StringFlag{Name: "observe", Value: "", Usage: "Serve frames to websocket observers on a loopback address, e.g. 127.0.0.1:7777"},
	cli.DurationFlag{Name: "step", Value: config.DefaultFixedStep, Usage: "Fixed simulation step"},
	cli.StringFlag{Name: "log-dir", Value: config.DefaultLogDir, Usage: "Directory for debug logs"},
	cli.BoolFlag{Name: "no-audio", Usage: "Disable sound"},
	cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "rollball"
	app.Usage = "Roll-a-ball with debug telemetry"
	app.Flags = playFlags
	app.Action = playAction

	app.Commands = []cli.Command{
		{
			Name:   "play",
			Usage:  "Play a session (default)",
			Flags:  playFlags,
			Action: playAction,
		},
		{
			Name:      "replay",
			Usage:     "Summarize a telemetry recording",
			ArgsUsage: "<recording" + config.RecordingExt + ">",
			Action: func(c *cli.Context) error {
				path := c.Args().First()
				if path == "" {
					return errors.New("replay: recording path required")
				}
				s, err := record.Summarize(path)
				if err != nil {
					return err
				}
				printReplay(c.App.Writer, path, s)
				return nil
			},
		},
	}
	return app
}

func playAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	return play(cfg)
}

// loadConfig reads the YAML file, then applies flags that were set explicitly
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	path := c.String("config")
	if path == "" {
		if _, err := os.Stat(config.DefaultConfig); err == nil {
			path = config.DefaultConfig
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("mode") {
		cfg.DebugMode = c.String("mode")
	}
	if c.IsSet("record") {
		cfg.Record = c.String("record")
	}
	if c.IsSet("observe") {
		cfg.Observe = c.String("observe")
	}
	if c.IsSet("step") {
		cfg.FixedStep = c.Duration("step")
	}
	if c.IsSet("log-dir") {
		cfg.LogDir = c.String("log-dir")
	}
	if c.Bool("no-audio") {
		cfg.Audio = false
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	return cfg, errors.Wrap(cfg.Validate(), "config")
}
