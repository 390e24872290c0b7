// Package compress implements the three compression codecs a .vach leaf
// may select (§4.5): LZ4, Snappy and Brotli. Each codec is a symmetric
// (encode, decode) pair over byte slices behind the Codec interface; the
// writer picks one per leaf via the 2-bit selector stored in the registry
// entry's flags, and the reader looks the same codec up by that selector
// to reverse it.
package compress
