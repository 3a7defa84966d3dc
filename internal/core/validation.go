package core

// validation.go enforces the parts of a contract that are checked before
// any data row is scanned:
//
//  1. Extension check: the file path's extension must equal the contract's,
//     case-insensitively, before any content is read.
//  2. Header check: the file's first row must equal the contract's column
//     list exactly -- same names, same order, same count.

import (
	"path/filepath"
	"strings"

	"github.com/exchangeops/filecheck/internal/contract"
)

// CheckExtension verifies the file path's extension against the contract.
// Returns a format-kind ValidationError on mismatch.
func CheckExtension(path string, c *contract.FileContract) error {
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, c.Extension) {
		return formatErr("invalid extension: %q (expected %q)", ext, c.Extension)
	}
	return nil
}

// CheckHeader verifies strict sequence equality between the contract's
// expected columns and the file's actual header row. On mismatch the
// returned structure-kind ValidationError carries both sequences.
func CheckHeader(expected, actual []string) error {
	if headerEqual(expected, actual) {
		return nil
	}
	return &ValidationError{
		Kind:     KindStructure,
		Message:  "header does not match contract",
		Expected: expected,
		Actual:   actual,
	}
}

func headerEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
