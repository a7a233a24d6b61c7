// Command imgopt walks a directory tree and writes a size-reduced mirror of
// it, optimizing images through external tools or an in-process re-encoder
// and reporting the aggregate savings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"imgindex/internal/config"
	"imgindex/internal/optimize"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	in          = flag.String("in", "", "input directory (required)")
	out         = flag.String("out", "", "output directory (required)")
	maxWidth    = flag.Int("max-width", 0, "resize bound for re-encoded copies (0 keeps sizes)")
	webpFlag    = flag.Bool("webp", false, "also write a .webp derivative next to each image")
	noExec      = flag.Bool("no-exec", false, "skip external tools, always re-encode in process")
	quiet       = flag.Bool("quiet", false, "suppress the progress bar")
	cfgPath     = flag.String("config", "", "optional YAML config file")
	showVersion = flag.Bool("version", false, "print version information and exit")
)

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Printf("imgopt %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	opts := optimize.Options{
		InputDir:    *in,
		OutputDir:   *out,
		MaxWidth:    cfg.Optimize.MaxWidth,
		WebP:        *webpFlag,
		WebPQuality: cfg.Optimize.WebPQuality,
		NoExec:      *noExec,
		Tools:       cfg.Optimize.Tools,
		Progress:    !*quiet,
	}
	if *maxWidth > 0 {
		opts.MaxWidth = *maxWidth
	}

	stats, err := optimize.Run(opts)
	if err != nil {
		log.Fatalf("imgopt: %v", err)
	}
	fmt.Println(stats.Report())
}
