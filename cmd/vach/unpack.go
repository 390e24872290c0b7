package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/arloliu/vach/internal/clilog"
	"github.com/arloliu/vach/reader"
)

var unpackCommand = cli.Command{
	Name:  "unpack",
	Usage: "extract every leaf of a .vach archive to a directory",
	Flags: []cli.Flag{inputFlag, directoryFlag, keypairFlag, secretFlag, publicFlag, strictFlag, magicFlag},
	Action: func(c *cli.Context) error {
		input, err := requireString(c, "input")
		if err != nil {
			return err
		}

		dir := c.String("directory")
		if dir == "" {
			dir = "."
		}

		r, closeFn, err := openArchive(c, input)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		for _, id := range r.ListEntries() {
			res, fetchErr := r.Fetch(id)
			if fetchErr != nil {
				clilog.Errorf("%s: %v", id, fetchErr)
				continue
			}

			dest := filepath.Join(dir, id)
			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(dest, res.Bytes, 0o644); err != nil {
				return err
			}

			clilog.Basicf("unpacked %s (%d bytes, verified=%v)", id, res.Length, res.Verified)
		}

		return nil
	},
}

// openArchive opens input per the shared archive-reading flags, returning
// a close function the caller must defer.
func openArchive(c *cli.Context, input string) (*reader.Reader, func(), error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, err
	}

	var opts []reader.Option
	if c.String("magic") != "" {
		opts = append(opts, reader.WithExpectedMagic(c.String("magic")))
	}
	if public, pubErr := loadPublic(c); pubErr != nil {
		f.Close()
		return nil, nil, pubErr
	} else if len(public) > 0 {
		opts = append(opts, reader.WithPublicKey(public))
	}
	if secret, secErr := loadSecret(c); secErr != nil {
		f.Close()
		return nil, nil, secErr
	} else if len(secret) > 0 {
		opts = append(opts, reader.WithSecretKey(secret))
	}
	if c.Bool("strict") {
		opts = append(opts, reader.WithStrictMode())
	}

	r, err := reader.Open(f, opts...)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return r, func() { f.Close() }, nil
}
