// Package endian provides the byte-order abstraction the section codec
// encodes and decodes an archive's header and registry entries through.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder interfaces
// into a single EndianEngine so one value offers both the Put*/Uint*
// fixed-field methods section/header.go and section/entry.go use and the
// Append* methods for writing into a growing buffer.
//
// The wire format is little-endian throughout (see spec.md §3), so
// section/ only ever calls GetLittleEndianEngine(). GetBigEndianEngine is
// kept alongside it for interoperability with a big-endian caller outside
// this archive format's own wire encoding, the same reason
// encoding/binary ships both orders rather than just one.
//
//	import "github.com/arloliu/vach/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, entry.Flags)
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian and binary.BigEndian both
// satisfy it already.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine the wire format
// uses for every header and registry entry field.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
