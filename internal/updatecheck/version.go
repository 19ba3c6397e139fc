package updatecheck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// VersionKey maps a version such as "1.2.3/4" to a number that orders
// versions: every dotted segment becomes two digits of the integer part and
// the build number after "/" becomes three fractional digits, so "1.2.3/4"
// is 10203.004. Non-numeric segments count as zero.
func VersionKey(version string) float64 {
	main, build := version, defaultBuild
	if idx := strings.Index(version, versionSeparator); idx >= 0 {
		main, build = version[:idx], version[idx+1:]
	}

	var sb strings.Builder
	for _, seg := range trimTrailingEmpty(strings.Split(main, segmentSeparator)) {
		sb.WriteString(padded(seg, 2, emptySegment))
	}
	sb.WriteString(".")
	sb.WriteString(padded(build, 3, defaultBuild))

	key, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0
	}
	return key
}

func padded(s string, width int, fallback string) string {
	if !digitsOnly.MatchString(s) {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return fmt.Sprintf("%0*d", width, n)
}

func trimTrailingEmpty(parts []string) []string {
	for len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// newerThan reports whether last is a newer release than current. Either
// side being empty, or the two matching ignoring case, means no.
func newerThan(last, current string) bool {
	if last == "" || current == "" || strings.EqualFold(last, current) {
		return false
	}
	return VersionKey(last) > VersionKey(current)
}
