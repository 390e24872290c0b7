package section

// Archive-level flag bits (distinct from the per-entry flags in entry.go).
// Stored in the header's 4-byte ArchiveFlags field; the low byte is
// reserved for this package, the remaining bits are free for caller use
// (the builder config's ArchiveFlags).
const (
	ArchiveFlagHasPublicKey uint32 = 1 << 0
)

// Byte sizes of the header's fixed sub-regions.
const (
	HeaderBaseSize   = 5 + 2 + 4 + 2 // magic + version + archive flags + entry count
	PublicKeySize    = 32
	HeaderMaxSize    = HeaderBaseSize + PublicKeySize

	// EntryFixedSize is the byte length of a registry entry up to (but not
	// including) the optional signature and the identifier.
	EntryFixedSize = 4 + 1 + 8 + 8 // flags + content_version + location + offset
)
