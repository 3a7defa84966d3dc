// Package core implements the file validation engine: schema compilation
// from declarative type rules, header contract enforcement, and the
// row-scanning loop. It has no CLI or transport dependencies and can be
// driven by any frontend.
package core

import "strings"

// Cell is one normalized value from a data row. Empty and whitespace-only
// cells normalize to the null cell (Valid=false); every type rule accepts
// the null cell.
type Cell struct {
	String string
	Valid  bool
}

// NormalizeCell trims whitespace and maps empty results to the null cell.
func NormalizeCell(s string) Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return Cell{}
	}
	return Cell{String: s, Valid: true}
}

// Request identifies one file to validate.
type Request struct {
	// Path is the local path of the delimited file.
	Path string
	// Partner is the submitting partner's identifier in the store.
	Partner string
	// FileKey selects which of the partner's contracts applies.
	FileKey string
	// SampleSize bounds how many data rows are type-checked. Rows beyond
	// the bound are accepted without inspection.
	SampleSize int
}

// Result is the success summary for one validated file.
type Result struct {
	RunID               string `json:"run_id"`
	Status              string `json:"status"`
	Partner             string `json:"partner"`
	File                string `json:"file"`
	FileKey             string `json:"file_key"`
	SampleValidatedRows int    `json:"sample_validated_rows"`
}

// StatusOK is the Status value of every successful Result.
const StatusOK = "OK"
