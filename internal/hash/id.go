// Package hash provides the fast, non-cryptographic digest used as a map
// key pre-filter when tracking leaf/entry identifiers. It is never used for
// anything security-sensitive; signing, AEAD key derivation and nonce
// derivation live in internal/crypto and use a cryptographic hash instead.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 digest of an archive identifier.
func ID(identifier string) uint64 {
	return xxhash.Sum64String(identifier)
}
