package scan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/syntaxpresso/core/internal/jpa"
)

// Store caches classification results keyed by file path and content
// hash, so unchanged files skip re-parsing across runs.
type Store interface {
	Get(path, hash string) (Descriptor, bool)
	Put(path, hash string, d Descriptor) error
}

// Scanner classifies every Java file under a source root.
type Scanner struct {
	// Store is an optional classification cache.
	Store Store
	// Workers bounds the parse pool; 0 means GOMAXPROCS.
	Workers int
	// Excludes are directory names skipped during the walk.
	Excludes []string
}

func (s *Scanner) workerCount() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (s *Scanner) excluded(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, e := range s.Excludes {
		if name == e {
			return true
		}
	}
	return false
}

// collect walks the root and returns every .java file path.
func (s *Scanner) collect(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && s.excluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".java") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Scan classifies every Java file under root. Files are parsed
// concurrently on a bounded pool; the result is sorted by path, so it
// does not depend on worker scheduling. A missing root yields the
// walk error; a file that disappears mid-scan does too.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Descriptor, error) {
	paths, err := s.collect(root)
	if err != nil {
		return nil, err
	}

	var (
		mu  sync.Mutex
		out []Descriptor
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerCount())
	for _, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var hash string
			if s.Store != nil {
				sum := sha256.Sum256(data)
				hash = hex.EncodeToString(sum[:])
				if d, ok := s.Store.Get(path, hash); ok {
					mu.Lock()
					out = append(out, d)
					mu.Unlock()
					return nil
				}
			}

			d, err := ClassifySource(data, path)
			if err != nil {
				return err
			}
			if s.Store != nil {
				// Cache misses are not fatal; the scan result is.
				_ = s.Store.Put(path, hash, d)
			}

			mu.Lock()
			out = append(out, d)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Filter returns the descriptors matching the given classification.
func Filter(descs []Descriptor, kind Kind) []Descriptor {
	var out []Descriptor
	for _, d := range descs {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// FilesOfType returns the descriptors declaring the given kind of
// top-level type.
func FilesOfType(descs []Descriptor, kind jpa.FileType) []Descriptor {
	var out []Descriptor
	for _, d := range descs {
		if d.Name != "" && d.TypeKind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Packages returns the sorted set of distinct package names declared
// by the scanned files. Default-package files contribute nothing.
func Packages(descs []Descriptor) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range descs {
		if d.Package != "" && !seen[d.Package] {
			seen[d.Package] = true
			out = append(out, d.Package)
		}
	}
	sort.Strings(out)
	return out
}

// RootPackage returns the shortest package name, the conventional root
// of a Maven/Gradle project. Ties resolve lexicographically.
func RootPackage(packages []string) string {
	root := ""
	for _, p := range packages {
		if root == "" || len(p) < len(root) || (len(p) == len(root) && p < root) {
			root = p
		}
	}
	return root
}
