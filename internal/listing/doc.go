// Package listing turns a directory of image files into an HTML fragment
// that references each image with its pixel dimensions.
//
// Scan enumerates the directory and resolves dimensions through
// imgmeta.DimensionsOf; formats the core cannot size (SVG, WebP) still
// appear in the listing, just without width and height attributes. Render
// and Write assemble the per-image tags into a single output artifact.
// Optional extras: dominant-color placeholder swatches, bounded thumbnail
// copies, OCR-derived alt text (cgo builds only) and an fsnotify watch mode
// that regenerates the artifact when the directory changes.
package listing
