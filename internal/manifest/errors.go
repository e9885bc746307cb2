package manifest

import "errors"

var (
	// ErrManifestNotFound is returned when no Cargo.toml exists in the start
	// directory or any of its parents.
	ErrManifestNotFound = errors.New("Cargo.toml not found")
	// ErrReadManifest is returned when Cargo.toml cannot be read.
	ErrReadManifest = errors.New("read Cargo.toml")
	// ErrDecodeManifest is returned when Cargo.toml is not valid TOML.
	ErrDecodeManifest = errors.New("decode Cargo.toml")
	// ErrMissingPackageName is returned when [package] has no name.
	ErrMissingPackageName = errors.New("Cargo.toml has no package name")
	// ErrEntrypointNotFound is returned when no documented source file exists.
	ErrEntrypointNotFound = errors.New("no entrypoint found")
)
