package feed

import "fmt"

// MalformedInputError reports an XML parse failure in the source document.
// The run is aborted at the point the parser detects the violation.
type MalformedInputError struct {
	Offset int64
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input at byte %d: %v", e.Offset, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a required child field absent from a matched
// element.
type MissingFieldError struct {
	Element string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s element is missing required field %q", e.Element, e.Field)
}

// OutputWriteError reports a failure creating or writing the feed file.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("writing output: %v", e.Err)
	}
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
