package main

import (
	"github.com/urfave/cli"

	"github.com/arloliu/vach/internal/clilog"
	"github.com/arloliu/vach/internal/crypto"
	"github.com/arloliu/vach/keyfile"
)

var keypairCommand = cli.Command{
	Name:  "keypair",
	Usage: "generate a fresh Ed25519 key pair",
	Flags: []cli.Flag{outputFlag, splitFlag},
	Action: func(c *cli.Context) error {
		output, err := requireString(c, "output")
		if err != nil {
			return err
		}

		secret, public, err := crypto.GenerateKeyPair()
		if err != nil {
			return err
		}

		if c.Bool("split") {
			if err := keyfile.WriteSecret(output+".sk", secret); err != nil {
				return err
			}
			if err := keyfile.WritePublic(output+".pk", public); err != nil {
				return err
			}
			clilog.Basicf("wrote %s.sk and %s.pk", output, output)

			return nil
		}

		if err := keyfile.WriteKeyPair(output+".kp", secret, public); err != nil {
			return err
		}
		clilog.Basicf("wrote %s.kp", output)

		return nil
	},
}
