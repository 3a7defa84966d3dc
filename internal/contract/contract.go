// Package contract defines the per-partner file contracts and the
// configuration store they are resolved from.
//
// The store is a YAML document keyed by partner identifier, each value a
// mapping from file key to contract:
//
//	acme:
//	  default:
//	    extension: .csv
//	    separator: ";"
//	    encoding: utf-8
//	    columns: [email, first_name, last_name]
//	    types:
//	      email: email
//
// Contracts are read-only after loading and safe to share across calls.
package contract

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultEncoding is applied when a contract does not name one.
const DefaultEncoding = "utf-8"

// DefaultFileKey identifies the contract used when a partner submits a
// single file type.
const DefaultFileKey = "default"

// Sentinel errors for contract resolution. Callers match with errors.Is.
var (
	ErrUnknownPartner  = errors.New("unknown partner")
	ErrUnknownFileKey  = errors.New("unknown file key")
	ErrInvalidContract = errors.New("invalid contract")
)

// FileContract describes one file type a partner may submit.
type FileContract struct {
	// Extension is the required file extension including the leading dot,
	// compared case-insensitively (".csv" accepts ".CSV").
	Extension string `yaml:"extension"`

	// Separator is the field delimiter, exactly one character.
	Separator string `yaml:"separator"`

	// Encoding is the text encoding of the file (default: utf-8).
	// Any encoding known to the WHATWG index is accepted (latin1,
	// windows-1252, ...).
	Encoding string `yaml:"encoding"`

	// Columns is the exact ordered header the file must carry.
	Columns []string `yaml:"columns"`

	// Types maps column names to type-rule identifiers. Columns absent
	// from the map default to the permissive "string" rule.
	Types map[string]string `yaml:"types"`
}

// SeparatorRune returns the delimiter as a rune.
// Validate guarantees the separator is exactly one rune.
func (c *FileContract) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r
}

// Validate checks that the contract carries everything the engine needs.
// It does not touch Types: unknown rule names are handled permissively at
// schema compile time.
func (c *FileContract) Validate() error {
	if c.Separator == "" {
		return fmt.Errorf("%w: 'separator' is missing", ErrInvalidContract)
	}
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("%w: 'separator' must be a single character, got %q", ErrInvalidContract, c.Separator)
	}
	if len(c.Columns) == 0 {
		return fmt.Errorf("%w: 'columns' is missing or empty", ErrInvalidContract)
	}
	seen := make(map[string]struct{}, len(c.Columns))
	for _, col := range c.Columns {
		if _, dup := seen[col]; dup {
			return fmt.Errorf("%w: duplicate column %q", ErrInvalidContract, col)
		}
		seen[col] = struct{}{}
	}
	return nil
}

// Store is the loaded configuration store: partner id -> file key -> contract.
type Store struct {
	partners map[string]map[string]*FileContract
}

// LoadStore reads and parses a partner configuration store from path.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read partner config: %w", err)
	}
	return ParseStore(data)
}

// ParseStore parses a partner configuration store from raw YAML.
// An empty document yields a store with no partners.
func ParseStore(data []byte) (*Store, error) {
	var partners map[string]map[string]*FileContract
	if err := yaml.Unmarshal(data, &partners); err != nil {
		return nil, fmt.Errorf("parse partner config: %w", err)
	}
	if partners == nil {
		partners = map[string]map[string]*FileContract{}
	}
	// Apply defaults up front so resolved contracts never need mutation
	// and stay safe for concurrent reuse.
	for _, files := range partners {
		for _, c := range files {
			if c != nil && c.Encoding == "" {
				c.Encoding = DefaultEncoding
			}
		}
	}
	return &Store{partners: partners}, nil
}

// Resolve returns the contract for (partner, fileKey).
//
// Fails with ErrUnknownPartner or ErrUnknownFileKey when a key is absent,
// and with ErrInvalidContract when the resolved contract is unusable.
// The returned contract is shared and must not be mutated.
func (s *Store) Resolve(partner, fileKey string) (*FileContract, error) {
	files, ok := s.partners[partner]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPartner, partner)
	}
	c, ok := files[fileKey]
	if !ok || c == nil {
		return nil, fmt.Errorf("%w: %q not defined for partner %q", ErrUnknownFileKey, fileKey, partner)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Partners returns the number of partners in the store.
func (s *Store) Partners() int {
	return len(s.partners)
}
