// Package pathresolve resolves bare command names against the PATH
// environment variable, the way a POSIX shell finds external programs.
package pathresolve

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// Resolve returns the first executable file named name across the
// colon-separated (platform path-list separated) PATH directories, in
// order. It reports false if PATH is unset or no directory has a matching
// executable.
func Resolve(name string) (string, bool) {
	for _, dir := range searchDirs() {
		candidate := filepath.Join(dir, name)
		if isExecutableFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ListNames returns the deduplicated, lexicographically sorted names of
// every executable across all PATH directories whose name begins with
// prefix. Used by tab completion.
func ListNames(prefix string) []string {
	seen := make(map[string]struct{})
	for _, dir := range searchDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, ent := range entries {
			name := ent.Name()
			if len(name) < len(prefix) || name[:len(prefix)] != prefix {
				continue
			}
			if !isExecutableFile(filepath.Join(dir, name)) {
				continue
			}
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func searchDirs() []string {
	path := os.Getenv("PATH")
	if path == "" {
		return nil
	}
	return filepath.SplitList(path)
}

// isExecutableFile reports whether path names a regular, executable file.
// On POSIX it additionally requires at least one of the three execute bits;
// on non-POSIX platforms a regular file is sufficient.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return info.Mode().IsRegular()
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
