package optimize

import "fmt"

// Report formats the human-readable summary printed at the end of a run.
func (s *Stats) Report() string {
	saved := s.InputBytes - s.OutputBytes
	return fmt.Sprintf("%d optimized, %d copied, %d failed\n%s in, %s out, saved %s (%.1f%%)",
		s.Optimized, s.Copied, s.Failed,
		humanBytes(s.InputBytes), humanBytes(s.OutputBytes), humanBytes(saved), s.SavedPercent())
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
