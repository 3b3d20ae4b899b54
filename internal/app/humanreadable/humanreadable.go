// humanreadable formats byte counts for log output.
package humanreadable

import "fmt"

// IEC returns b as a human readable size using IEC (binary) units,
// e.g. 48.8 KiB or 1.4 MiB. Values below one KiB are returned as
// plain bytes.
func IEC(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// SI returns b as a human readable size using SI (decimal) units,
// e.g. 50.0 kB or 1.5 MB. Values below 1000 are returned as plain
// bytes.
func SI(b int64) string {
	const unit = 1000
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "kMGTPE"[exp])
}
