package core

// engine.go wires the pipeline together for a single file:
// resolve contract -> compile schema -> extension check -> open/decode ->
// header check -> sampled row scan -> result.

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/exchangeops/filecheck/internal/contract"
	"github.com/google/uuid"
)

// DefaultSampleSize is the number of data rows type-checked when a request
// does not set its own bound.
const DefaultSampleSize = 1000

// ContextCheckInterval is how often the row loop checks for cancellation.
var ContextCheckInterval = 100

// Engine validates partner files against resolved contracts.
// An Engine is stateless per call and safe for concurrent use.
type Engine struct {
	log *slog.Logger
}

// NewEngine creates an engine. A nil logger falls back to slog.Default.
func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log}
}

// ValidateFile validates one file against the contract resolved from the
// store for (req.Partner, req.FileKey).
//
// The call is fail-fast: the first violation, in the order config ->
// format -> structure -> row scan, aborts with a *ValidationError and no
// partial result. At most req.SampleSize data rows are type-checked; rows
// beyond the bound are accepted unseen. I/O failures propagate as plain
// wrapped errors.
func (e *Engine) ValidateFile(ctx context.Context, store *contract.Store, req Request) (*Result, error) {
	if req.FileKey == "" {
		req.FileKey = contract.DefaultFileKey
	}
	if req.SampleSize <= 0 {
		req.SampleSize = DefaultSampleSize
	}

	c, err := store.Resolve(req.Partner, req.FileKey)
	if err != nil {
		return nil, configErr(err)
	}

	if err := CheckExtension(req.Path, c); err != nil {
		return nil, err
	}

	schema := CompileSchema(c.Columns, c.Types, e.log)

	f, err := os.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	dec, err := newDecodingReader(f, c.Encoding)
	if err != nil {
		return nil, configErr(fmt.Errorf("%w: %s", contract.ErrInvalidContract, err))
	}

	r := csv.NewReader(dec)
	r.Comma = c.SeparatorRune()
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, structureErr("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := CheckHeader(c.Columns, header); err != nil {
		return nil, err
	}

	rows := 0
	for rows < req.SampleSize {
		if rows%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rows+1, err)
		}

		rows++
		if col, verr := schema.ValidateRow(rec); verr != nil {
			return nil, rowTypeErr(rows, col, verr)
		}
	}

	fileName := filepath.Base(req.Path)
	e.log.Info("file validated",
		"partner", req.Partner,
		"file", fileName,
		"file_key", req.FileKey,
		"rows_sampled", rows,
	)

	return &Result{
		RunID:               uuid.NewString(),
		Status:              StatusOK,
		Partner:             req.Partner,
		File:                fileName,
		FileKey:             req.FileKey,
		SampleValidatedRows: rows,
	}, nil
}
