package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/netinspect/asicview/cmd/run"
	"github.com/netinspect/asicview/internal/show"
	"github.com/netinspect/asicview/internal/voq"
	"github.com/netinspect/asicview/pkg/terrors"
	"github.com/netinspect/asicview/ver"
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println(ver.Version())
	}

	app := &cli.App{
		Name:  "voqutil",
		Usage: "display distributed-chassis forwarding objects",
		Flags: append(run.Flags(),
			&cli.StringFlag{
				Name:     "command",
				Aliases:  []string{"c"},
				Usage:    "one of system_ports, system_neighbors, system_lags",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "interface",
				Aliases: []string{"i"},
				Usage:   "filter by interface name",
			},
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"a"},
				Usage:   "filter neighbors by IP address",
			},
			&cli.StringFlag{
				Name:    "system-lag",
				Aliases: []string{"s"},
				Usage:   "filter by system lag name",
			},
			&cli.StringFlag{
				Name:    "namespace",
				Aliases: []string{"n"},
				Usage:   "filter by namespace name",
			},
			&cli.StringFlag{
				Name:    "linecard",
				Aliases: []string{"l"},
				Usage:   "filter by linecard name",
			},
		),
		Action:  run.Run(dispatch),
		Version: "v",
	}

	// Inspection is best-effort: report the problem, exit clean.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func dispatch(c *cli.Context, rt run.Runtime) error {
	ctx := context.Background()
	opts := show.VOQOptions{
		Namespace: c.String("namespace"),
		Linecard:  c.String("linecard"),
		Iface:     c.String("interface"),
		IP:        c.String("address"),
		Lag:       c.String("system-lag"),
	}

	switch cmd := c.String("command"); cmd {
	case "system_ports":
		show.SystemPorts(os.Stdout, voq.ScanAllSystemPorts(ctx, rt.Namespaces), opts)
	case "system_neighbors":
		show.SystemNeighbors(os.Stdout, voq.ScanAllSystemNeighbors(ctx, rt.Namespaces), opts)
	case "system_lags":
		show.SystemLags(os.Stdout, voq.ScanAllSystemLags(ctx, rt.Namespaces), opts)
	default:
		return errors.Wrapf(terrors.ErrInvalidValue, "unknown command %s", cmd)
	}
	return nil
}
