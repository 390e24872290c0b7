// Package crypto implements the cryptographic binding (§4.6): Ed25519
// key-pair handling, deterministic AEAD key and per-leaf nonce derivation,
// the canonical signing input, and the AEAD seal/open wrappers the writer
// and reader pipelines call.
package crypto
