// Package reader implements the archive reader engine (§4.4): it parses a
// header and registry from a seekable byte source into an identifier
// index, then services per-identifier fetches that reverse the writer's
// per-leaf transforms (decrypt, verify, decompress) on demand.
package reader
