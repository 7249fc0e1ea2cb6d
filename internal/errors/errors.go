package errors

import (
	stderrors "errors"
	"io/fs"
	"strconv"
	"unicode/utf8"
)

// Error is the structured error type for minigrep.
type Error struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Kind is the failure kind derived from Code.
	Kind Kind

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config or IO).
	Category Category

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
// It returns the bare message so the CLI can prefix it.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
func (e *Error) WithDetail(key, value string) *Error {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// New creates an Error with the given code and message.
func New(code string, message string, cause error) *Error {
	return &Error{
		Code:     code,
		Kind:     kindFromCode(code),
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// MissingQuery reports that no query argument was given.
func MissingQuery() *Error {
	return New(ErrCodeMissingQuery, MsgMissingQuery, nil).
		WithSuggestion("usage: minigrep <query> <filename>")
}

// MissingFilename reports that no file name argument was given.
func MissingFilename() *Error {
	return New(ErrCodeMissingFilename, MsgMissingFilename, nil).
		WithSuggestion("usage: minigrep <query> <filename>")
}

// SettingsError reports an invalid settings file or override.
func SettingsError(message string, cause error) *Error {
	return New(ErrCodeSettingsInvalid, message, cause)
}

// FlagError reports a command-line flag that could not be parsed.
func FlagError(cause error) *Error {
	return New(ErrCodeInvalidFlag, cause.Error(), cause)
}

// ReadError classifies a failure to read path into an IO error.
// A nil cause yields nil.
func ReadError(path string, cause error) *Error {
	if cause == nil {
		return nil
	}

	code := ErrCodeReadFailed
	switch {
	case stderrors.Is(cause, fs.ErrNotExist):
		code = ErrCodeFileNotFound
	case stderrors.Is(cause, fs.ErrPermission):
		code = ErrCodeFilePermission
	}
	return New(code, cause.Error(), cause).WithDetail("path", path)
}

// ErrInvalidUTF8 is the cause attached to encoding failures.
var ErrInvalidUTF8 = stderrors.New("stream did not contain valid UTF-8")

// EncodingError reports that path is not valid UTF-8 text.
// offset is the byte position of the first invalid sequence.
func EncodingError(path string, data []byte) *Error {
	offset := len(data)
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			offset = i
			break
		}
		i += size
	}
	return New(ErrCodeInvalidEncoding, ErrInvalidUTF8.Error(), ErrInvalidUTF8).
		WithDetail("path", path).
		WithDetail("offset", strconv.Itoa(offset))
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Category == CategoryConfig
	}
	return false
}

// GetCode extracts the error code, or "" if err is not an *Error.
func GetCode(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetKind extracts the failure kind, or 0 if err is not an *Error.
func GetKind(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return 0
}
