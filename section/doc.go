// Package section implements the binary codec for the two fixed-layout
// regions of a .vach archive: the file header and each registry entry
// (§3, §4.1 of the format spec). Encoding is little-endian throughout;
// each Bytes() method and its ReadHeader/ReadEntry decoder are byte-exact
// inverses of each other.
package section
