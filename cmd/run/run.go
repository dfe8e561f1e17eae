package run

import (
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/netinspect/asicview/configs"
	"github.com/netinspect/asicview/internal/asic"
	"github.com/netinspect/asicview/pkg/log"
)

// Runtime .
type Runtime struct {
	ConfigFiles []string
	Namespaces  []asic.Namespace
}

// Runner .
type Runner func(*cli.Context, Runtime) error

// Flags returns the flags every binary shares.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "config",
			Usage: "config files",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "override the configured log level",
		},
	}
}

// Run wraps a command action with config and log setup.
func Run(fn Runner) cli.ActionFunc {
	return func(c *cli.Context) error {
		var rt Runtime
		rt.ConfigFiles = c.StringSlice("config")

		if err := setup(rt.ConfigFiles, c.String("log-level")); err != nil {
			return errors.Wrap(err, "setup")
		}
		rt.Namespaces = asic.Namespaces()

		return fn(c, rt)
	}
}

func setup(files []string, level string) error {
	if len(files) > 0 {
		if err := configs.Conf.Load(files); err != nil {
			return err
		}
	}

	if len(level) == 0 {
		level = configs.Conf.LogLevel
	}
	return log.Setup(level, configs.Conf.LogFile)
}
