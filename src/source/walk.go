// Package source builds candidate line lists from a directory tree,
// the way a shell pipeline (find/fd) would feed a filter's stdin, but
// in-process and with glob-based exclusion.
package source

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/pkg/errors"
)

// WalkOptions configures a directory-tree candidate scan.
type WalkOptions struct {
	// Excludes are doublestar glob patterns; a relative path matching
	// any of them (file or directory) is skipped entirely.
	Excludes []string
	// FollowSymlinks is passed through as fastwalk.Config's Follow
	// option.
	FollowSymlinks bool
}

// Walk returns every non-directory entry under root (regular files,
// symlinks and other special files alike), as paths relative to root,
// in lexical order.
func Walk(root string, opts WalkOptions) ([]string, error) {
	// fastwalk invokes the callback from several goroutines at once.
	var mu sync.Mutex
	var paths []string

	conf := fastwalk.Config{Follow: opts.FollowSymlinks}
	walkErr := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}

		excluded, matchErr := matchesAny(opts.Excludes, rel)
		if matchErr != nil {
			return matchErr
		}
		if excluded {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		mu.Lock()
		paths = append(paths, rel)
		mu.Unlock()
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "walking %s", root)
	}

	sort.Strings(paths)
	return paths, nil
}

func matchesAny(patterns []string, rel string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, errors.Wrapf(err, "bad exclude pattern %q", pattern)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
