package main

import (
	"fmt"

	"github.com/urfave/cli"
)

var listCommand = cli.Command{
	Name:  "list",
	Usage: "print every identifier in a .vach archive and its size",
	Flags: []cli.Flag{inputFlag, keypairFlag, secretFlag, publicFlag, strictFlag, magicFlag},
	Action: func(c *cli.Context) error {
		input, err := requireString(c, "input")
		if err != nil {
			return err
		}

		r, closeFn, err := openArchive(c, input)
		if err != nil {
			return err
		}
		defer closeFn()

		for _, e := range r.Entries() {
			fmt.Printf("%s\t%d\n", e.Identifier, e.Length)
		}

		return nil
	},
}
