package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/arloliu/vach/format"
	"github.com/arloliu/vach/internal/clilog"
	"github.com/arloliu/vach/internal/hash"
	"github.com/arloliu/vach/leaf"
	"github.com/arloliu/vach/writer"
)

var packCommand = cli.Command{
	Name:  "pack",
	Usage: "build a .vach archive from a file and/or a directory",
	Flags: []cli.Flag{
		inputFlag, outputFlag, directoryFlag, recurseFlag, excludeFlag,
		keypairFlag, secretFlag, compressFlag, algorithmFlag, hashFlag,
		encryptFlag, signFlag, leafFlagsFlag, magicFlag, truncateFlag, sortFlag,
	},
	Action: runPack,
}

func runPack(c *cli.Context) error {
	output, err := requireString(c, "output")
	if err != nil {
		return err
	}

	if !c.Bool("truncate") {
		if _, statErr := os.Stat(output); statErr == nil {
			return fmt.Errorf("%s already exists (use --truncate to overwrite)", output)
		}
	}

	files, err := collectFiles(c.String("input"), c.String("directory"), c.Bool("directory-r"), c.String("exclude"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("nothing to pack: supply --input and/or --directory")
	}
	sortFiles(files, c.String("sort"))

	policy, err := parsePolicy(c.String("compress"))
	if err != nil {
		return err
	}
	algo, err := parseAlgorithm(c.String("algorithm"))
	if err != nil {
		return err
	}

	secret, err := loadSecret(c)
	if err != nil {
		return err
	}

	var opts []writer.Option
	if c.String("magic") != "" {
		opts = append(opts, writer.WithMagic(c.String("magic")))
	}
	if len(secret) > 0 {
		opts = append(opts, writer.WithSecretKey(secret))
	}

	b, err := writer.NewBuilder(opts...)
	if err != nil {
		return err
	}

	for _, f := range files {
		data, readErr := os.ReadFile(f.path)
		if readErr != nil {
			return readErr
		}

		if c.Bool("hash") {
			clilog.Debugf("%s: digest=%x size=%d", f.id, hash.ID(f.id), len(data))
		}

		l := leaf.Leaf{
			Identifier: f.id,
			Source:     leaf.FromBytes(data),
			Policy:     policy,
			Algorithm:  algo,
			Encrypt:    c.Bool("encrypt"),
			Sign:       c.Bool("sign"),
			Flags:      uint32(c.Int("flags")) &^ format.ReservedFlagsMask, //nolint:gosec
		}
		if err := b.AddLeaf(l); err != nil {
			return fmt.Errorf("%s: %w", f.id, err)
		}
	}

	n, err := b.DumpToFile(output, func(p writer.Progress) {
		clilog.Basicf("packed %s (%d bytes, was %d bytes, compressed=%v)", p.Identifier, p.BlobLength, p.OriginalLength, p.Compressed)
	}, func(f writer.Failure) {
		clilog.Errorf("%s: dropped: %v", f.Identifier, f.Err)
	})
	if err != nil {
		return err
	}

	clilog.Basicf("wrote %s: %d bytes", output, n)

	return nil
}
