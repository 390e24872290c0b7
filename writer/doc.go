// Package writer implements the builder pipeline (§4.3): it accepts leaves,
// transforms each through optional compression, encryption and signing,
// and assembles a header, registry and blob region into an output stream
// or file in a single deterministic pass.
package writer
