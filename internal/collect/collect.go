package collect

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var ErrIO = errors.New("i/o failure")

type Options struct {
	// SkipComments drops blank lines and '#' comments from list files.
	// Off by default: every line is taken verbatim.
	SkipComments bool
}

// Configured reads the preference list files in order and returns their
// lines as candidate ids.
func Configured(paths []string, opts Options) ([]string, error) {
	var out []string
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrIO, p, err)
		}
		lines, err := listLines(b, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrIO, p, err)
		}
		out = append(out, lines...)
	}
	return out, nil
}

func listLines(b []byte, opts Options) ([]string, error) {
	var out []string
	s := bufio.NewScanner(bytes.NewReader(b))
	s.Buffer(make([]byte, 0, 4096), len(b)+1)
	for s.Scan() {
		ln := s.Text()
		if opts.SkipComments {
			ln = strings.TrimSpace(ln)
			if ln == "" || strings.HasPrefix(ln, "#") {
				continue
			}
		}
		out = append(out, ln)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Present lists the immediate children of each data root. Entries come back
// sorted by name within a root, roots keep their order.
func Present(roots []string) ([]string, error) {
	var out []string
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: list %s: %w", ErrIO, root, err)
		}
		for _, e := range entries {
			out = append(out, e.Name())
		}
	}
	return out, nil
}

// Seen is the per-run dedup set.
type Seen map[string]struct{}

// First records id and reports whether this is its first sighting.
func (s Seen) First(id string) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Merge concatenates the sources and drops ids already in seen.
func Merge(seen Seen, sources ...[]string) []string {
	var out []string
	for _, src := range sources {
		for _, id := range src {
			if seen.First(id) {
				out = append(out, id)
			}
		}
	}
	return out
}
