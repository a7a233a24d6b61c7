// Package optimize walks a directory tree and produces a size-reduced
// mirror of it. Image files are shrunk by the external optimizer configured
// for their extension (jpegoptim, optipng, gifsicle by default), or
// re-encoded in process when no tool is installed; everything else is copied
// verbatim. A derivative that ends up larger than its source is discarded in
// favor of a plain copy. The package decides purely by file extension and
// never consults the header decoders.
package optimize
