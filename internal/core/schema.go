package core

// schema.go compiles a contract's column list and type-rule mapping into an
// ordered row schema. Compilation happens once per contract; the result is
// immutable and safe to reuse across rows, calls, and goroutines.

import "log/slog"

// ColumnValidator checks one column's cells against its compiled rule.
type ColumnValidator struct {
	// Name is the column this validator applies to.
	Name string
	// Rule is the resolved rule name ("string" when the contract named an
	// unknown rule).
	Rule string

	check RuleFunc
}

// Validate applies the column's rule to a normalized cell.
// The null cell is always accepted.
func (v ColumnValidator) Validate(cell Cell) error {
	if !cell.Valid {
		return nil
	}
	return v.check(cell.String)
}

// RowSchema is the compiled, ordered set of per-column validators.
type RowSchema struct {
	columns []ColumnValidator
}

// CompileSchema builds a RowSchema from an ordered column list and a sparse
// column->rule mapping. Columns absent from the mapping, and columns naming
// a rule the table does not know, compile to the permissive "string" rule;
// the unknown-rule fallback is logged at warn level so misconfigured
// contracts stay auditable.
func CompileSchema(columns []string, typeRules map[string]string, log *slog.Logger) *RowSchema {
	if log == nil {
		log = slog.Default()
	}

	compiled := make([]ColumnValidator, len(columns))
	for i, col := range columns {
		name := RuleString
		if r, ok := typeRules[col]; ok && r != "" {
			name = r
		}

		fn, ok := lookupRule(name)
		if !ok {
			log.Warn("unknown type rule, falling back to string",
				"column", col,
				"rule", name,
			)
			name = RuleString
			fn, _ = lookupRule(RuleString)
		}

		compiled[i] = ColumnValidator{Name: col, Rule: name, check: fn}
	}

	return &RowSchema{columns: compiled}
}

// Columns returns the schema's validators in contract column order.
func (s *RowSchema) Columns() []ColumnValidator {
	return s.columns
}

// Len returns the number of columns in the schema.
func (s *RowSchema) Len() int {
	return len(s.columns)
}

// ValidateRow applies every column validator, in order, to a raw data row.
//
// The row is shaped to the schema first: missing trailing cells become null
// cells, extra trailing cells are ignored (header shape was already
// enforced, so data-row width drift is tolerated). The first violation
// stops the scan and is returned with its column name.
func (s *RowSchema) ValidateRow(row []string) (column string, err error) {
	for i, v := range s.columns {
		var cell Cell
		if i < len(row) {
			cell = NormalizeCell(row[i])
		}
		if err := v.Validate(cell); err != nil {
			return v.Name, err
		}
	}
	return "", nil
}
