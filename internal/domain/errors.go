package domain

import "errors"

// ErrorKind classifies a disbursement pipeline failure so callers can branch
// on failure class without parsing the normalized message.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindIO
	KindValidation
	KindOther
)

// String returns the kind's name for logging
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindIO:
		return "io"
	case KindValidation:
		return "validation"
	default:
		return "other"
	}
}

// PipelineError tags an underlying error with its failure kind
type PipelineError struct {
	Kind ErrorKind
	Err  error
}

// Error returns the underlying error's description
func (e *PipelineError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is/As
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewIOError tags err as a filesystem/I-O failure
func NewIOError(err error) *PipelineError {
	return &PipelineError{Kind: KindIO, Err: err}
}

// NewValidationError tags err as a policy validation failure
func NewValidationError(err error) *PipelineError {
	return &PipelineError{Kind: KindValidation, Err: err}
}

// NewOtherError tags err as an unexpected failure
func NewOtherError(err error) *PipelineError {
	return &PipelineError{Kind: KindOther, Err: err}
}

// KindOf returns the pipeline kind of err, or KindOther for untagged errors
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindOther
}

// MissingPolicyError reports the first required policy absent from a load.
// The message shape is part of the external contract; callers match on it.
type MissingPolicyError struct {
	Name string
}

// Error implements the error interface
func (e *MissingPolicyError) Error() string {
	return "Missing required policy: " + e.Name
}
