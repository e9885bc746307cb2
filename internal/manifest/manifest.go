// Package manifest reads Cargo project metadata.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/agentflare-ai/go-cargo-readme/internal/readme"
)

// FileName is the Cargo manifest file name.
const FileName = "Cargo.toml"

// defaultEntrypoints are tried, in order, before the manifest's targets.
var defaultEntrypoints = []string{
	filepath.Join("src", "lib.rs"),
	filepath.Join("src", "main.rs"),
}

type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
		// License is a string, or a table when inherited from a workspace.
		License any `toml:"license"`
	} `toml:"package"`
	Lib struct {
		Path string `toml:"path"`
	} `toml:"lib"`
	Bin []struct {
		Name string `toml:"name"`
		Path string `toml:"path"`
	} `toml:"bin"`
}

// FindRoot returns the nearest directory, starting at start and walking up,
// that holds a Cargo.toml file.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if isFile(filepath.Join(dir, FileName)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %q or any parent directory", ErrManifestNotFound, start)
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Load reads the Cargo.toml in root.
func Load(root string) (readme.Metadata, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return readme.Metadata{}, fmt.Errorf("%w in %q", ErrManifestNotFound, root)
		}
		return readme.Metadata{}, fmt.Errorf("%w: %w", ErrReadManifest, err)
	}
	return Parse(data)
}

// Parse decodes Cargo.toml content. A license that is not a plain string,
// such as `license.workspace = true`, counts as absent. Bin is the path of the
// last [[bin]] target that declares one.
func Parse(data []byte) (readme.Metadata, error) {
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return readme.Metadata{}, fmt.Errorf("%w: %w", ErrDecodeManifest, err)
	}
	name := strings.TrimSpace(m.Package.Name)
	if name == "" {
		return readme.Metadata{}, ErrMissingPackageName
	}
	meta := readme.Metadata{
		Name: name,
		Lib:  m.Lib.Path,
	}
	if license, ok := m.Package.License.(string); ok {
		meta.License = license
	}
	for _, bin := range m.Bin {
		if bin.Path != "" {
			meta.Bin = bin.Path
		}
	}
	return meta, nil
}

// Entrypoint returns the documented source file of the crate in root:
// src/lib.rs, then src/main.rs, then the manifest's lib and bin paths.
func Entrypoint(root string, meta readme.Metadata) (string, error) {
	candidates := append([]string{}, defaultEntrypoints...)
	for _, p := range []string{meta.Lib, meta.Bin} {
		if p != "" {
			candidates = append(candidates, filepath.FromSlash(p))
		}
	}
	for _, candidate := range candidates {
		path := candidate
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		if isFile(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %q", ErrEntrypointNotFound, root)
}
