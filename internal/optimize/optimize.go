package optimize

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Options control a batch run.
type Options struct {
	InputDir    string
	OutputDir   string
	MaxWidth    int  // resize bound for re-encoded copies; 0 keeps sizes
	WebP        bool // also write a .webp derivative next to each image
	WebPQuality int
	NoExec      bool // skip external tools, always re-encode in process
	Tools       map[string][]string
	Progress    bool
}

// Stats aggregates the outcome of a run.
type Stats struct {
	Optimized   int
	Copied      int
	Failed      int
	InputBytes  int64
	OutputBytes int64
}

// SavedPercent is the share of input bytes the mirror avoided.
func (s *Stats) SavedPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// imageExts are the formats the optimizer tries to shrink; everything else
// is copied verbatim so the output tree stays a complete mirror.
var imageExts = map[string]bool{".png": true, ".gif": true, ".jpg": true, ".jpeg": true}

// Run walks the input tree and produces the optimized mirror, preserving
// directory structure. A file that fails to process is logged and counted,
// never fatal to the run.
func Run(opts Options) (*Stats, error) {
	if opts.InputDir == "" || opts.OutputDir == "" {
		return nil, fmt.Errorf("input and output directories are required")
	}

	var files []string
	err := filepath.WalkDir(opts.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", opts.InputDir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files under %s", opts.InputDir)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(len(files)))
	}

	stats := &Stats{}
	for _, path := range files {
		if err := processFile(path, opts, stats); err != nil {
			log.Printf("%s: %v", path, err)
			stats.Failed++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return stats, nil
}

func processFile(path string, opts Options, stats *Stats) error {
	rel, err := filepath.Rel(opts.InputDir, path)
	if err != nil {
		return err
	}
	dst := filepath.Join(opts.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	stats.InputBytes += info.Size()

	ext := strings.ToLower(filepath.Ext(path))
	if !imageExts[ext] {
		if err := copyFile(path, dst); err != nil {
			return err
		}
		stats.OutputBytes += info.Size()
		stats.Copied++
		return nil
	}

	if err := shrink(path, dst, ext, opts); err != nil {
		// Failed derivatives degrade to a plain copy.
		if err := copyFile(path, dst); err != nil {
			return err
		}
	}

	out, err := os.Stat(dst)
	if err != nil {
		return err
	}
	if out.Size() >= info.Size() {
		// Never grow: a derivative larger than its source is discarded.
		if err := copyFile(path, dst); err != nil {
			return err
		}
		out = info
		stats.Copied++
	} else {
		stats.Optimized++
	}
	stats.OutputBytes += out.Size()

	if opts.WebP {
		webpDst := strings.TrimSuffix(dst, filepath.Ext(dst)) + ".webp"
		if err := webpCopy(path, webpDst, opts); err != nil {
			log.Printf("%s: webp derivative failed: %v", path, err)
		}
	}
	return nil
}

// shrink produces the optimized file at dst: through the external tool for
// ext when one is configured and installed, otherwise by re-encoding.
func shrink(src, dst, ext string, opts Options) error {
	tool := opts.Tools[strings.TrimPrefix(ext, ".")]
	if tool == nil {
		tool = defaultTools[strings.TrimPrefix(ext, ".")]
	}
	if !opts.NoExec && len(tool) > 0 && toolInstalled(tool[0]) {
		if err := copyFile(src, dst); err != nil {
			return err
		}
		return runTool(tool, dst)
	}
	return reencode(src, dst, opts.MaxWidth)
}

// copyFile copies src to dst, truncating any existing file.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
