package main

import "github.com/urfave/cli"

var (
	inputFlag     = cli.StringFlag{Name: "input, i", Usage: "archive or source file path"}
	outputFlag    = cli.StringFlag{Name: "output, o", Usage: "destination path"}
	directoryFlag = cli.StringFlag{Name: "directory, d", Usage: "directory of files to pack, or to unpack into"}
	recurseFlag   = cli.BoolFlag{Name: "directory-r", Usage: "walk --directory recursively"}
	excludeFlag   = cli.StringFlag{Name: "exclude, x", Usage: "glob pattern of files to skip"}
	keypairFlag   = cli.StringFlag{Name: "keypair, k", Usage: "*.kp file (secret || public)"}
	secretFlag    = cli.StringFlag{Name: "secret, s", Usage: "*.sk file"}
	publicFlag    = cli.StringFlag{Name: "public, p", Usage: "*.pk file"}
	compressFlag  = cli.StringFlag{Name: "compress, c", Value: "detect", Usage: "always|never|detect"}
	algorithmFlag = cli.StringFlag{Name: "algorithm, g", Value: "lz4", Usage: "lz4|snappy|brotli"}
	hashFlag      = cli.BoolFlag{Name: "hash, a", Usage: "log each leaf's identifier digest while packing (shown at debug log level)"}
	encryptFlag   = cli.BoolFlag{Name: "encrypt, e", Usage: "encrypt every packed leaf"}
	signFlag      = cli.BoolFlag{Name: "sign", Usage: "sign every packed leaf"}
	leafFlagsFlag = cli.IntFlag{Name: "flags, f", Usage: "caller-supplied u32 leaf flag bits"}
	magicFlag     = cli.StringFlag{Name: "magic, m", Usage: "5-character archive magic"}
	truncateFlag  = cli.BoolFlag{Name: "truncate, t", Usage: "overwrite --output if it already exists"}
	sortFlag      = cli.StringFlag{Name: "sort", Usage: "size-ascending|size-descending|alphabetical|alphabetical-reversed"}
	resourceFlag  = cli.StringFlag{Name: "resource, r", Usage: "identifier to fetch"}
	strictFlag    = cli.BoolFlag{Name: "strict", Usage: "fail on any signature verification failure"}
	splitFlag     = cli.BoolFlag{Name: "split", Usage: "write separate *.sk/*.pk files instead of one *.kp"}
)
