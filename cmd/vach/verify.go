package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arloliu/vach/internal/clilog"
)

var verifyCommand = cli.Command{
	Name:  "verify",
	Usage: "check every signed leaf's signature",
	Flags: []cli.Flag{inputFlag, keypairFlag, secretFlag, publicFlag, magicFlag},
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

		failures := 0
		for _, e := range r.Entries() {
			if !e.Signed {
				continue
			}

			res, fetchErr := r.Fetch(e.Identifier)
			if fetchErr != nil {
				clilog.Errorf("%s: %v", e.Identifier, fetchErr)
				failures++
				continue
			}
			if !res.Verified {
				clilog.Errorf("%s: signature verification failed", e.Identifier)
				failures++
				continue
			}

			clilog.Basicf("%s: ok", e.Identifier)
		}

		if failures > 0 {
			return fmt.Errorf("%d signature(s) failed verification", failures)
		}

		return nil
	},
}
