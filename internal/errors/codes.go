// Package errors provides the structured error type for minigrep.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors (arguments, settings)
//   - 2XX: IO errors (reading the document)
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates a problem with arguments or settings.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates a failure while obtaining the document text.
	CategoryIO Category = "IO"
)

// Kind is the closed set of failures the driver can report.
type Kind int

const (
	// KindMissingQuery means no query argument was supplied.
	KindMissingQuery Kind = iota + 1
	// KindMissingFilename means no file name argument was supplied.
	KindMissingFilename
	// KindInvalidSettings means a settings file or override was rejected.
	KindInvalidSettings
	// KindInvalidFlag means a command-line flag could not be parsed.
	KindInvalidFlag
	// KindIOFailure means the document could not be read.
	KindIOFailure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMissingQuery:
		return "MissingQuery"
	case KindMissingFilename:
		return "MissingFilename"
	case KindInvalidSettings:
		return "InvalidSettings"
	case KindInvalidFlag:
		return "InvalidFlag"
	case KindIOFailure:
		return "IoFailure"
	default:
		return "Unknown"
	}
}

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeMissingQuery    = "ERR_101_MISSING_QUERY"
	ErrCodeMissingFilename = "ERR_102_MISSING_FILENAME"
	ErrCodeSettingsInvalid = "ERR_103_SETTINGS_INVALID"
	ErrCodeInvalidFlag     = "ERR_104_INVALID_FLAG"

	// IO errors (200-299)
	ErrCodeFileNotFound    = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFilePermission  = "ERR_202_FILE_PERMISSION"
	ErrCodeInvalidEncoding = "ERR_203_INVALID_ENCODING"
	ErrCodeReadFailed      = "ERR_204_READ_FAILED"
)

// Messages reported for missing arguments.
const (
	MsgMissingQuery    = "No query string was found in the inputs"
	MsgMissingFilename = "No file name was found in the inputs"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryIO
	}

	// "1" from "ERR_101_MISSING_QUERY"
	if code[4] == '1' {
		return CategoryConfig
	}
	return CategoryIO
}

// kindFromCode maps a code to its Kind.
func kindFromCode(code string) Kind {
	switch code {
	case ErrCodeMissingQuery:
		return KindMissingQuery
	case ErrCodeMissingFilename:
		return KindMissingFilename
	case ErrCodeSettingsInvalid:
		return KindInvalidSettings
	case ErrCodeInvalidFlag:
		return KindInvalidFlag
	default:
		return KindIOFailure
	}
}
