package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/go-cargo-readme/internal/readme"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParse(t *testing.T) {
	t.Parallel()

	meta, err := Parse([]byte(`
[package]
name = "my_crate"
version = "0.1.0"
license = "MIT OR Apache-2.0"

[lib]
path = "src/my_lib.rs"

[[bin]]
name = "first"
path = "src/bin/first.rs"

[[bin]]
name = "second"
path = "src/bin/second.rs"

[[bin]]
name = "implicit"
`))
	require.NoError(t, err)
	assert.Equal(t, readme.Metadata{
		Name:    "my_crate",
		License: "MIT OR Apache-2.0",
		Lib:     "src/my_lib.rs",
		Bin:     "src/bin/second.rs",
	}, meta)
}

func TestParseOptionalFields(t *testing.T) {
	t.Parallel()

	meta, err := Parse([]byte("[package]\nname = \"bare\"\n"))
	require.NoError(t, err)
	assert.Equal(t, readme.Metadata{Name: "bare"}, meta)
	assert.False(t, meta.HasLicense())
}

func TestParseWorkspaceLicenseIsAbsent(t *testing.T) {
	t.Parallel()

	meta, err := Parse([]byte("[package]\nname = \"member\"\nlicense.workspace = true\n"))
	require.NoError(t, err)
	assert.Equal(t, "", meta.License)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("[package\nname = "))
	require.ErrorIs(t, err, ErrDecodeManifest)

	_, err = Parse([]byte("[package]\nversion = \"1.0.0\"\n"))
	require.ErrorIs(t, err, ErrMissingPackageName)

	_, err = Parse([]byte("[workspace]\nmembers = [\"a\"]\n"))
	require.ErrorIs(t, err, ErrMissingPackageName)
}

func TestFindRootFromNestedDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "[package]\nname = \"x\"\n")
	nested := filepath.Join(root, "src", "deep", "er")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindRoot(nested)
	require.NoError(t, err)
	want, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindRootSkipsManifestDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "[package]\nname = \"x\"\n")
	child := filepath.Join(root, "child")
	require.NoError(t, os.MkdirAll(filepath.Join(child, FileName), 0o755))

	got, err := FindRoot(child)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRootNotFound(t *testing.T) {
	t.Parallel()

	// The temp directory lives outside any Cargo project.
	_, err := FindRoot(t.TempDir())
	require.ErrorIs(t, err, ErrManifestNotFound)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "[package]\nname = \"loaded\"\nlicense = \"MIT\"\n")
	meta, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, readme.Metadata{Name: "loaded", License: "MIT"}, meta)

	_, err = Load(t.TempDir())
	require.ErrorIs(t, err, ErrManifestNotFound)
}

func TestEntrypointPrecedence(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	meta := readme.Metadata{Name: "x", Lib: "lib/custom.rs", Bin: "bin/tool.rs"}

	_, err := Entrypoint(root, meta)
	require.ErrorIs(t, err, ErrEntrypointNotFound)

	steps := []string{"bin/tool.rs", "lib/custom.rs", "src/main.rs", "src/lib.rs"}
	for _, rel := range steps {
		path := filepath.Join(root, filepath.FromSlash(rel))
		writeFile(t, path, "//! doc\n")
		got, err := Entrypoint(root, meta)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	}
}
