// Package assets minifies the site's stylesheets.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/evanw/esbuild/pkg/api"
)

// DefaultInclude selects every stylesheet under the static dir.
var DefaultInclude = []string{"**/*.css"}

// DefaultExclude skips files that are already minified.
var DefaultExclude = []string{"**/*.min.css"}

// Result describes one minified file.
type Result struct {
	Source       string
	Output       string
	OriginalSize int64
	MinifiedSize int64
}

// Savings is the number of bytes removed.
func (r Result) Savings() int64 { return r.OriginalSize - r.MinifiedSize }

// Percent is the size reduction relative to the original.
func (r Result) Percent() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.Savings()) / float64(r.OriginalSize) * 100
}

// Find returns the files under root matching any include pattern and no
// exclude pattern, as slash-separated paths relative to root.
func Find(root string, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}
	if exclude == nil {
		exclude = DefaultExclude
	}
	fsys := os.DirFS(root)
	seen := map[string]bool{}
	var out []string
	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || matchesAny(m, exclude) {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out, nil
}

// matchesAny checks the path and its base name against every pattern.
func matchesAny(relPath string, patterns []string) bool {
	base := filepath.Base(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.PathMatch(pattern, relPath); err == nil && ok {
			return true
		}
		if ok, err := doublestar.PathMatch(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// MinifiedName maps a.css to a.min.css.
func MinifiedName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".min.css"
}

// MinifyCSS returns the minified form of a stylesheet.
func MinifyCSS(src []byte) ([]byte, error) {
	res := api.Transform(string(src), api.TransformOptions{
		Loader:            api.LoaderCSS,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		LogLevel:          api.LogLevelSilent,
	})
	if len(res.Errors) > 0 {
		var errs []error
		for _, m := range res.Errors {
			errs = append(errs, errors.New(m.Text))
		}
		return nil, fmt.Errorf("minifying css: %w", errors.Join(errs...))
	}
	return res.Code, nil
}

// MinifyFile writes the minified form of path next to it.
func MinifyFile(path string) (Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	out, err := MinifyCSS(src)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	dst := MinifiedName(path)
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", dst, err)
	}
	return Result{Source: path, Output: dst, OriginalSize: int64(len(src)), MinifiedSize: int64(len(out))}, nil
}
