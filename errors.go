package omniparser

import "fmt"

// ValidationError reports malformed input: wrong extension, empty file.
// The caller must fix the input; retrying cannot help.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// FileReadError reports an I/O or engine-open failure for the input file.
type FileReadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FileReadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// ParsingError reports a failure during extraction, including an OCR run
// that exceeded its wall-clock budget.
type ParsingError struct {
	Stage string
	Err   error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("parsing failed during %s: %v", e.Stage, e.Err)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}
