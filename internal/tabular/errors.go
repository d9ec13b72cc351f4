package tabular

import "errors"

// Sentinel errors for loading and writing. Callers match with errors.Is.
var (
	ErrFileNotFound        = errors.New("tabular: file not found")
	ErrUnsupportedFormat   = errors.New("tabular: unsupported file format, expected .csv or .xlsx")
	ErrInsufficientColumns = errors.New("tabular: input must contain three or more columns")
	ErrNonNumericData      = errors.New("tabular: criteria columns must contain numeric values only")
)
