package main

import (
	"os"

	"github.com/urfave/cli"
)

// pipeCommand writes a single resource's decoded bytes to stdout and
// nothing else (§6, S6) so the output can be piped directly into another
// program.
var pipeCommand = cli.Command{
	Name:  "pipe",
	Usage: "write one resource's bytes to standard output",
	Flags: []cli.Flag{inputFlag, resourceFlag, keypairFlag, secretFlag, publicFlag, strictFlag, magicFlag},
	Action: func(c *cli.Context) error {
		input, err := requireString(c, "input")
		if err != nil {
			return err
		}
		id, err := requireString(c, "resource")
		if err != nil {
			return err
		}

		r, closeFn, err := openArchive(c, input)
		if err != nil {
			return err
		}
		defer closeFn()

		res, err := r.Fetch(id)
		if err != nil {
			return err
		}

		_, err = os.Stdout.Write(res.Bytes)
		return err
	},
}
