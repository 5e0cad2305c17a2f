package bench

import (
	"fmt"
	"io"
)

// WriteReport prints one line per scanner, best first. totalBytes is the
// number of haystack bytes each scanner was expected to scan. With full set
// failed scanners keep their timings and get a failure count; otherwise they
// are only marked as failed.
func WriteReport(w io.Writer, stats []Stats, totalBytes int64, full bool) error {
	if _, err := fmt.Fprint(w, "End Scan\n\n"); err != nil {
		return err
	}
	for _, s := range Rank(stats) {
		if _, err := fmt.Fprintf(w, "%-32s | ", s.Name); err != nil {
			return err
		}

		var err error
		switch {
		case !full && s.Failed():
			_, err = fmt.Fprintln(w, "failed")
		case full:
			_, err = fmt.Fprintf(w, "%14v = %7.3f ns/byte | %d failed\n", s.Elapsed, nsPerByte(s, totalBytes), s.Failures)
		default:
			_, err = fmt.Fprintf(w, "%14v = %7.3f ns/byte\n", s.Elapsed, nsPerByte(s, totalBytes))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func nsPerByte(s Stats, totalBytes int64) float64 {
	if totalBytes <= 0 {
		return 0
	}
	return float64(s.Elapsed.Nanoseconds()) / float64(totalBytes)
}
