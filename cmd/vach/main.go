// Command vach is the CLI front end for the .vach archive engine (§6): an
// external collaborator over the writer and reader packages, specified
// only at its boundary. It never appears in library call sites; it is the
// only package in this module allowed to log.
package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/arloliu/vach/internal/clilog"
)

func main() {
	app := cli.NewApp()
	app.Name = "vach"
	app.Usage = "pack, inspect and unpack .vach archives"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "log-level", Value: "basic", Usage: "error|warning|basic|debug"},
	}
	app.Before = func(c *cli.Context) error {
		clilog.SetLevel(clilog.FromString(c.String("log-level")))
		return nil
	}

	app.Commands = []cli.Command{
		packCommand,
		unpackCommand,
		listCommand,
		pipeCommand,
		verifyCommand,
		keypairCommand,
		splitCommand,
	}

	if err := app.Run(os.Args); err != nil {
		clilog.Fatalf("%v", err)
	}
}
