package types

import (
	"regexp"
	"strings"
)

// Api versions are conventionally date stamped, optionally with a
// suffix such as "-preview" or "-beta".
var apiVersionPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?:-(.+))?$`)

// CompareAPIVersions is a total order over api version strings:
//
//   - date-stamped versions compare by date;
//   - for equal dates, the plain (GA) version sorts above any suffixed
//     version, and two suffixed versions compare by suffix,
//     case-insensitively;
//   - anything that is not date stamped compares case-insensitively
//     lexicographic, below every date-stamped version.
//
// Returns -1, 0 or 1.
func CompareAPIVersions(a, b string) int {
	am := apiVersionPattern.FindStringSubmatch(a)
	bm := apiVersionPattern.FindStringSubmatch(b)

	switch {
	case am == nil && bm == nil:
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	case am == nil:
		return -1
	case bm == nil:
		return 1
	}

	if c := strings.Compare(am[1], bm[1]); c != 0 {
		return c
	}
	switch {
	case am[2] == "" && bm[2] == "":
		return 0
	case am[2] == "":
		return 1
	case bm[2] == "":
		return -1
	}
	return strings.Compare(strings.ToLower(am[2]), strings.ToLower(bm[2]))
}
