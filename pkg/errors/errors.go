package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or token validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError is raised by the host renderer when an element cannot be
// serialised, for example an unsupported tag or attribute.
type RenderError struct {
	Tag       string
	Attribute string
	Message   string
}

// NewRenderError constructs a RenderError for the given tag.
func NewRenderError(tag, attribute, message string) error {
	return &RenderError{Tag: tag, Attribute: attribute, Message: message}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Attribute != "" {
		return fmt.Sprintf("render error <%s %s>: %s", e.Tag, e.Attribute, e.Message)
	}
	return fmt.Sprintf("render error <%s>: %s", e.Tag, e.Message)
}

// StoryError indicates a problem registering or resolving a story.
type StoryError struct {
	StoryID string
	Message string
}

// NewStoryError constructs a StoryError.
func NewStoryError(storyID, message string) error {
	return &StoryError{StoryID: storyID, Message: message}
}

func (e *StoryError) Error() string {
	if e == nil {
		return ""
	}
	if e.StoryID != "" {
		return fmt.Sprintf("story error [%s]: %s", e.StoryID, e.Message)
	}
	return fmt.Sprintf("story error: %s", e.Message)
}

// CoverageError reports the metrics that fell below their thresholds.
type CoverageError struct {
	Failed []string
}

// NewCoverageError constructs a CoverageError from failed metric descriptions.
func NewCoverageError(failed []string) error {
	return &CoverageError{Failed: append([]string(nil), failed...)}
}

func (e *CoverageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("coverage below threshold: %s", strings.Join(e.Failed, ", "))
}
