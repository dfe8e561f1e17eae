package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/netinspect/asicview/cmd/run"
	"github.com/netinspect/asicview/internal/fdb"
	"github.com/netinspect/asicview/internal/show"
	"github.com/netinspect/asicview/ver"
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println(ver.Version())
	}

	app := &cli.App{
		Name:  "fdbshow",
		Usage: "display the learned MAC entries of the forwarding database",
		Flags: append(run.Flags(),
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "only entries learned on this port (comma-separated list allowed)",
			},
			&cli.StringFlag{
				Name:    "vlan",
				Aliases: []string{"v"},
				Usage:   "only entries on this VLAN id (comma-separated list allowed)",
			},
		),
		Action:  run.Run(showFDB),
		Version: "v",
	}

	// Any unhandled resolution error is printed and fails the run.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func showFDB(c *cli.Context, rt run.Runtime) error {
	entries, err := fdb.ScanAll(context.Background(), rt.Namespaces)
	if err != nil {
		return err
	}

	show.FDB(os.Stdout, entries, show.FDBOptions{
		Port: c.String("port"),
		Vlan: c.String("vlan"),
	})
	return nil
}
