// # cargo-readme
//
// `cargo-readme` generates a Rust crate's README.md from its crate-level
// documentation comments (the `//!` lines at the top of `src/lib.rs` or
// `src/main.rs`), so the README and the docs on docs.rs tell the same story
// and the README examples are compiled as doc tests.
//
// Given this `src/lib.rs`:
//
//	//! This is my awesome crate
//	//!
//	//! # Examples
//	//! ```
//	//! fn sum2(n1: i32, n2: i32) -> i32 {
//	//!   n1 + n2
//	//! }
//	//! # assert_eq!(4, sum2(2, 2));
//	//! ```
//
// `cargo readme` prints:
//
//	# crate-name
//
//	This is my awesome crate
//
//	## Examples
//	```rust
//	fn sum2(n1: i32, n2: i32) -> i32 {
//	  n1 + n2
//	}
//	```
//
// Untagged doc tests, and those marked `no_run`, `ignore` or `should_panic`,
// become `rust` blocks. Lines starting with `# ` inside them are hidden just as
// rustdoc hides them. Blocks tagged with another language are copied as is.
// `# Examples` became `## Examples` so the crate name can be the only
// top-level heading; use `--no-indent-headings` to keep the levels as written.
//
// ## Templates
//
// A `README.tpl` next to `Cargo.toml` is used automatically:
//
//	[![CI badge](https://example.com/badge.svg)](https://example.com)
//
//	{{readme}}
//
//	Some additional info here
//
// `{{readme}}` is required. `{{crate}}` and `{{license}}` insert the package
// name and license from `Cargo.toml` and take precedence over the default
// title and `--append-license`.
//
// ## Usage
//
//	cargo readme [flags]
//	cargo-readme [flags]
//
// Examples:
//
//   - Write README.md in the crate root:
//
//     cargo readme -o README.md
//
//   - Use a custom template and append the license line:
//
//     cargo readme -t docs/README.tpl --append-license -o README.md
//
//   - Preview the rendered README in the terminal:
//
//     cargo readme --preview
//
//   - Regenerate while editing:
//
//     cargo readme --watch -o README.md
//
// ## Supported Flags
//
//   - `-i, --input FILE`: file to read from. Defaults to `src/lib.rs`,
//     `src/main.rs`, then the manifest's `[lib]` or last `[[bin]]` path.
//   - `-o, --output FILE`: file to write to (stdout when omitted).
//   - `-t, --template FILE`: template file (default `README.tpl` if present).
//   - `--no-title`: do not prepend `# crate-name`.
//   - `--append-license`: append `License: <license>`.
//   - `--no-template`: ignore the template, including the default one.
//   - `--no-indent-headings`: keep heading levels as written.
//   - `-C, --project-dir DIR`: where to start looking for `Cargo.toml`.
//   - `--preview`, `--width N`: render for the terminal.
//   - `--watch`: regenerate when the source, template or manifest changes.
//   - `-v, --verbose`: log progress to stderr.
//
// Paths are relative to the directory holding `Cargo.toml`.
//
// ## Configuration
//
// Every flag can also be set through an environment variable such as
// `CARGO_README_APPEND_LICENSE=true`, or in a `.cargo-readme.toml` file in the
// crate root:
//
//	output = "README.md"
//	append-license = true
//
// Flags given on the command line win over the environment, which wins over
// the file.
//
// ## Shell Completion and CLI Docs
//
//	cargo-readme completion bash > /usr/local/etc/bash_completion.d/cargo-readme
//	cargo-readme gen-docs ./docs/cli
package main
