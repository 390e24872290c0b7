package reader

import "github.com/arloliu/vach/format"

// Resource is the caller-owned result of a fetch (§4.4): a detached copy
// of one leaf's decoded bytes plus its registry metadata.
type Resource struct {
	Bytes          []byte
	Length         uint64
	Flags          uint32
	ContentVersion uint8
	Verified       bool
}

// Compressed, Encrypted and Signed mirror the registry entry's flags the
// resource was decoded from.
func (r Resource) Compressed() bool { return r.Flags&format.FlagCompressed != 0 }
func (r Resource) Encrypted() bool  { return r.Flags&format.FlagEncrypted != 0 }
func (r Resource) Signed() bool     { return r.Flags&format.FlagSigned != 0 }

// EntryInfo is a materialized, read-only view of one registry entry,
// exposed by Reader.Entries for listing without a fetch (supplements §6
// `list_entries`).
type EntryInfo struct {
	Identifier     string
	Length         uint64
	ContentVersion uint8
	Compressed     bool
	Encrypted      bool
	Signed         bool
}
