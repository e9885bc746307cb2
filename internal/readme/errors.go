package readme

import "errors"

var (
	// ErrMissingLicense is returned when a license is requested, by flag or by
	// template placeholder, but the package metadata declares none.
	ErrMissingLicense = errors.New("missing license")
	// ErrMissingBodyPlaceholder is returned when a template lacks {{readme}}.
	ErrMissingBodyPlaceholder = errors.New("missing `{{readme}}` in template")
	// ErrReadSource is returned when the documented source cannot be read.
	ErrReadSource = errors.New("read source")
	// ErrReadTemplate is returned when the template cannot be read.
	ErrReadTemplate = errors.New("read template")
)
