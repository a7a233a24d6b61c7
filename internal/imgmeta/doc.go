// Package imgmeta extracts pixel dimensions from image files by parsing
// only their header bytes, without decoding any pixel data.
//
// Three container formats are supported: PNG, GIF and JPEG. The decoder is
// chosen by the file's lowercase extension alone; file contents are never
// sniffed. PNG and GIF store their dimensions at fixed offsets, so those
// decoders read a small bounded prefix. JPEG stores them inside a
// variable-position start-of-frame segment, so that decoder streams through
// the marker chain, skipping length-prefixed segments until it finds a frame
// header or reaches entropy-coded data.
//
// # Error Handling
//
// Every call has exactly two outcomes: a fully-populated dimension pair, or
// not recognized. Wrong format, truncated header, corrupt segment length and
// plain I/O failure all collapse into the second outcome. Callers only
// decide whether to emit dimensions, so a finer-grained taxonomy would go
// unused; one unreadable file must never abort a directory-level caller.
//
// # Concurrency
//
// Calls are stateless: each one opens, reads and closes its own file handle
// and owns its own buffer. Callers may invoke DimensionsOf from multiple
// goroutines without synchronization.
package imgmeta
