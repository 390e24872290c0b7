package writer

// Progress describes one leaf that survived transformation and was
// written into the archive. The builder invokes a Progress callback once
// per surviving leaf, after that leaf's registry entry and blob location
// are finalized and its blob has been written (§4.3, §5). Callbacks run
// sequentially on the goroutine that called DumpToStream/DumpToFile, in
// blob order, never from the transform workers.
//
// OriginalLength is the leaf's length before compression (or, for a leaf
// whose policy skipped or lost to compression, the same value as
// BlobLength before encryption touches it) — a CompressionStats-style
// field a caller uses to report space savings without re-reading the
// source.
type Progress struct {
	Identifier     string
	BlobLength     uint64
	Location       uint64
	OriginalLength uint64
	Compressed     bool
}

// ProgressFunc receives one Progress notification per surviving leaf.
type ProgressFunc func(Progress)

// Failure pairs a dropped leaf's identifier with the error that dropped
// it. The builder invokes a FailureFunc once per leaf whose transform
// failed (§4.3, §7): the leaf is excluded from the archive, but the
// archive as a whole still dumps successfully.
type Failure struct {
	Identifier string
	Err        error
}

// FailureFunc receives one Failure notification per dropped leaf, after
// DumpToStream/DumpToFile has finished transforming every leaf.
type FailureFunc func(Failure)
