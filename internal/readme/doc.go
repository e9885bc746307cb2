// Package readme turns crate-level documentation comments into a README.
//
// Extract classifies `//!` lines as prose or fenced example code, Fold joins
// the result, and Render either decorates it with a title and license line
// or merges it into a template using the {{crate}}, {{license}} and
// {{readme}} placeholders. The package does no file or environment access;
// callers supply the source stream, the template and the package Metadata.
package readme
