// Package errors provides structured error handling for facetgen.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Content/IO errors
//   - 4XX: Validation errors
//   - 5XX: Internal errors
//
// The facet index itself has no error paths by design; these errors belong
// to the host layers around it (config, content loading, artifact writing).
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates content and artifact I/O errors.
	CategoryIO Category = "IO"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// Content/IO errors (200-299)
	ErrCodeContentDirMissing = "ERR_201_CONTENT_DIR_MISSING"
	ErrCodeContentUnreadable = "ERR_202_CONTENT_UNREADABLE"
	ErrCodeArtifactWrite     = "ERR_203_ARTIFACT_WRITE"
	ErrCodeOutputLocked      = "ERR_204_OUTPUT_LOCKED"

	// Validation errors (400-499)
	ErrCodeInvalidCatalog = "ERR_401_INVALID_CATALOG"
	ErrCodeInvalidPath    = "ERR_402_INVALID_PATH"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode derives the category from the numeric range in the code.
func categoryFromCode(code string) Category {
	if len(code) < 5 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}
