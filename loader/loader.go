// Package loader resolves library lists and the standard library bootstrap
// location (spec.md §6 "Library lists", "Standard library bootstrap
// location").
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jcorbin/rail"
	"github.com/jcorbin/rail/internal/fileinput"
)

// ReadList parses a library-list file at path: non-empty, non-`#`-prefixed
// lines are relative paths, resolved relative to path's own directory.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dir := filepath.Dir(path)
	var paths []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, filepath.Join(dir, line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Resolve recursively expands `.txt` library lists and collects `.rail`
// sources into a single ordered queue of named readers: a fileinput.Input,
// which tracks the name and line of the source being read.
func Resolve(paths []string) (*fileinput.Input, error) {
	var in fileinput.Input
	var walk func(paths []string) error
	walk = func(paths []string) error {
		for _, p := range paths {
			switch filepath.Ext(p) {
			case ".txt":
				nested, err := ReadList(p)
				if err != nil {
					return fmt.Errorf("reading library list %s: %w", p, err)
				}
				if err := walk(nested); err != nil {
					return err
				}
			case ".rail":
				f, err := os.Open(p)
				if err != nil {
					return fmt.Errorf("opening source %s: %w", p, err)
				}
				in.Queue = append(in.Queue, f)
			default:
				return fmt.Errorf("library list entry %q has unrecognized extension", p)
			}
		}
		return nil
	}
	if err := walk(paths); err != nil {
		return nil, err
	}
	return &in, nil
}

// ReadAll drains in, concatenating every queued source's runes into one
// string, with a line break between consecutive sources. The resulting
// string tokenizes as a single program (spec.md §6: "all are concatenated,
// in order, into a single token stream").
func ReadAll(in *fileinput.Input) (string, error) {
	var b strings.Builder
	for {
		r, _, err := in.ReadRune()
		for r == 0 && err == nil {
			// A zero rune with no error marks the switch to the next queued
			// source; the line break keeps the last token (or line comment)
			// of one source from running into the first token of the next.
			b.WriteByte('\n')
			r, _, err = in.ReadRune()
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// StdlibBootstrapPath resolves the platform-appropriate per-user data
// directory, joined with rail-<version>/rail-src/stdlib/all.txt.
func StdlibBootstrapPath(conventions rail.RunConventions) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "plan9":
		// Here the per-user config directory is also the data directory.
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			dir = xdg
		} else if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "share")
		}
	}
	return filepath.Join(dir, "rail-"+conventions.Version, "rail-src", "stdlib", "all.txt"), nil
}
