package lint

import (
	"path/filepath"
	"strings"
)

// ExclusionList is a set of files that rules skip.  An entry matches a file
// whose path equals the entry or ends with "/" followed by the entry, after
// both are converted to forward slashes.
type ExclusionList struct {
	entries []string
}

// NewExclusionList returns an exclusion list of the given entries. Empty
// entries are ignored.
func NewExclusionList(entries ...string) ExclusionList {
	var el ExclusionList
	for _, e := range entries {
		e = strings.TrimPrefix(normPath(strings.TrimSpace(e)), "./")
		if e == "" {
			continue
		}
		el.entries = append(el.entries, e)
	}
	return el
}

// Len returns the number of entries.
func (el ExclusionList) Len() int {
	return len(el.entries)
}

// Excludes reports whether path is in the list.
func (el ExclusionList) Excludes(path string) bool {
	path = normPath(path)
	for _, e := range el.entries {
		if path == e || strings.HasSuffix(path, "/"+e) {
			return true
		}
	}
	return false
}

func normPath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}
