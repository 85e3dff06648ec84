package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/cache"
	"github.com/syntaxpresso/core/internal/config"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
	"github.com/syntaxpresso/core/internal/scan"
)

// emit writes a success envelope to the command's stdout.
func emit[T any](cmd *cobra.Command, name, cwd string, data T) error {
	return output.Ok(name, cwd, data).Write(cmd.OutOrStdout())
}

// emitError writes a failure envelope to the command's stdout. The
// envelope is the transport for command-level failures, so the command
// itself still exits zero.
func emitError[T any](cmd *cobra.Command, name, cwd string, err error) error {
	verbosef("%s: %v", name, err)
	return output.Fail[T](name, cwd, err).Write(cmd.OutOrStdout())
}

// decodeSource decodes base64-encoded Java source handed over a flag.
func decodeSource(b64 string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 source: %w", err)
	}
	return data, nil
}

// mutationInput resolves the target file of an entity mutation and
// loads its source. When a base64 payload is given it wins over the
// on-disk content: the editor's buffer may be ahead of the file.
func mutationInput(cwd, path, b64 string) ([]byte, string, error) {
	abs, err := resolveWithin(cwd, path)
	if err != nil {
		return nil, "", err
	}
	if b64 != "" {
		source, err := decodeSource(b64)
		return source, abs, err
	}
	source, err := os.ReadFile(abs)
	return source, abs, err
}

// parseCascades converts cascade flag values to their typed form.
func parseCascades(values []string) ([]jpa.CascadeType, error) {
	out := make([]jpa.CascadeType, 0, len(values))
	for _, v := range values {
		c, err := jpa.ParseCascadeType(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// parseOtherModifiers converts side-modifier flag values to their
// typed form.
func parseOtherModifiers(values []string) ([]jpa.OtherModifier, error) {
	out := make([]jpa.OtherModifier, 0, len(values))
	for _, v := range values {
		m, err := jpa.ParseOtherModifier(v)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// writeSourceFile writes a Java file, creating parent directories.
func writeSourceFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating package directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// newScanner builds a scanner from the project configuration, wiring
// the classification cache unless it is disabled. The cache is an
// optimization: failing to open it degrades to a plain scan.
func newScanner(cwd string) (*scan.Scanner, *cache.Cache, func()) {
	cfg, err := config.Load(cwd)
	if err != nil {
		verbosef("config: %v, using defaults", err)
		cfg = config.DefaultConfig()
	}

	s := &scan.Scanner{
		Workers:  cfg.Scan.Workers,
		Excludes: cfg.Scan.Exclude,
	}
	cleanup := func() {}
	var store *cache.Cache

	if !cfg.Scan.DisableCache {
		if dir, err := config.FindConfigDir(cwd); err == nil {
			if c, err := cache.Open(dir); err == nil {
				s.Store = c
				store = c
				cleanup = func() { c.Close() }
			} else {
				verbosef("cache: %v, scanning without cache", err)
			}
		}
	}
	return s, store, cleanup
}

// scanProject classifies every Java file under the given root. A scan
// of the whole project is the authoritative file set, so cache rows
// for files that no longer exist are dropped afterwards.
func scanProject(cwd, root string) ([]scan.Descriptor, error) {
	s, store, cleanup := newScanner(cwd)
	defer cleanup()

	descs, err := s.Scan(context.Background(), root)
	if err != nil {
		return nil, err
	}

	if store != nil && root == cwd {
		valid := make(map[string]bool, len(descs))
		for _, d := range descs {
			valid[d.Path] = true
		}
		if n, err := store.Prune(valid); err != nil {
			verbosef("cache: prune failed: %v", err)
		} else if n > 0 {
			verbosef("cache: pruned %d stale entries", n)
		}
	}
	return descs, nil
}

// typeResponses converts descriptors to the wire shape.
func typeResponses(descs []scan.Descriptor) []output.TypeResponse {
	out := make([]output.TypeResponse, 0, len(descs))
	for _, d := range descs {
		out = append(out, output.TypeResponse{
			PackageName: d.Package,
			TypeName:    d.Name,
			FilePath:    d.Path,
		})
	}
	return out
}
