// Command imgindex scans a directory of images and writes an HTML listing
// that references each file with its pixel dimensions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"imgindex/internal/config"
	"imgindex/internal/listing"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	dir         = flag.String("dir", ".", "directory to scan for images")
	out         = flag.String("out", "", "output file (default from config, images.html)")
	page        = flag.Bool("page", false, "wrap the fragments in a standalone HTML page")
	swatch      = flag.Bool("swatch", false, "embed each image's dominant color as a placeholder background")
	thumbs      = flag.String("thumbs", "", "directory to write thumbnails into (disabled when empty)")
	ocr         = flag.Bool("ocr", false, "prefer OCR-extracted text over filename-derived alt text")
	watch       = flag.Bool("watch", false, "keep running and regenerate on directory changes")
	cfgPath     = flag.String("config", "", "optional YAML config file")
	showVersion = flag.Bool("version", false, "print version information and exit")
)

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Printf("imgindex %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	output := cfg.Listing.Output
	if *out != "" {
		output = *out
	}

	build := func() error {
		entries, err := listing.Scan(*dir, cfg.Listing.Extensions)
		if err != nil {
			return err
		}
		for i := range entries {
			e := &entries[i]
			if *ocr {
				if text := listing.OCRAlt(e.Path); text != "" {
					e.Alt = text
				}
			}
			if *swatch && e.HasDims {
				hex, err := listing.Swatch(e.Path)
				if err != nil {
					log.Printf("%s: swatch skipped: %v", e.Name, err)
				} else {
					e.Swatch = hex
				}
			}
			if *thumbs != "" && e.HasDims {
				thumb, err := listing.Thumbnail(*e, *thumbs, cfg.Listing.ThumbSize)
				if err != nil {
					log.Printf("%s: thumbnail skipped: %v", e.Name, err)
				} else {
					e.Thumb = thumb
				}
			}
		}
		if err := listing.Write(output, entries, *page); err != nil {
			return err
		}
		log.Printf("wrote %s (%d images)", output, len(entries))
		return nil
	}

	if err := build(); err != nil {
		log.Fatalf("imgindex: %v", err)
	}
	if *watch {
		if err := listing.Watch(*dir, build); err != nil {
			log.Fatalf("watch: %v", err)
		}
	}
}
