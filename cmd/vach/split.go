package main

import (
	"github.com/urfave/cli"

	"github.com/arloliu/vach/internal/clilog"
	"github.com/arloliu/vach/keyfile"
)

// splitCommand splits an existing *.kp file into separate *.sk/*.pk
// files, the inverse of `keypair --split` (§6).
var splitCommand = cli.Command{
	Name:  "split",
	Usage: "split a *.kp keypair file into *.sk and *.pk files",
	Flags: []cli.Flag{inputFlag, outputFlag},
	Action: func(c *cli.Context) error {
		input, err := requireString(c, "input")
		if err != nil {
			return err
		}
		output, err := requireString(c, "output")
		if err != nil {
			return err
		}

		secret, public, err := keyfile.ReadKeyPair(input)
		if err != nil {
			return err
		}

		if err := keyfile.WriteSecret(output+".sk", secret); err != nil {
			return err
		}
		if err := keyfile.WritePublic(output+".pk", public); err != nil {
			return err
		}

		clilog.Basicf("wrote %s.sk and %s.pk", output, output)

		return nil
	},
}
