// Package leaf defines the producer-side description of one future registry
// entry (§4.2): an identifier, a lazily-read data source, a compression
// policy, and the encryption/signing toggles the writer pipeline consults
// while transforming the leaf into a blob and a registry entry.
package leaf
