package core

import (
	"errors"
	"testing"

	"github.com/exchangeops/filecheck/internal/contract"
)

func TestCheckExtension(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		ext     string
		wantErr bool
	}{
		{"exact match", "data/export.csv", ".csv", false},
		{"uppercase file extension", "data/EXPORT.CSV", ".csv", false},
		{"uppercase contract extension", "data/export.csv", ".CSV", false},
		{"wrong extension", "data/export.txt", ".csv", true},
		{"no extension", "data/export", ".csv", true},
		{"dotted base name", "data/export.2024.csv", ".csv", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &contract.FileContract{Extension: tt.ext}
			err := CheckExtension(tt.path, c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckExtension(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Kind != KindFormat {
					t.Errorf("CheckExtension error kind = %v, want KindFormat", err)
				}
			}
		})
	}
}

func TestCheckHeader(t *testing.T) {
	tests := []struct {
		name     string
		expected []string
		actual   []string
		wantErr  bool
	}{
		{"exact match", []string{"a", "b"}, []string{"a", "b"}, false},
		{"different order", []string{"a", "b"}, []string{"b", "a"}, true},
		{"missing column", []string{"a", "b"}, []string{"a"}, true},
		{"extra column", []string{"a", "b"}, []string{"a", "b", "c"}, true},
		{"case differs", []string{"a"}, []string{"A"}, true},
		{"empty header", []string{"a"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckHeader(tt.expected, tt.actual)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckHeader(%v, %v) error = %v, wantErr %v", tt.expected, tt.actual, err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %T is not *ValidationError", err)
			}
			if verr.Kind != KindStructure {
				t.Errorf("Kind = %v, want KindStructure", verr.Kind)
			}
			// Both sequences travel with the error for diagnostics.
			if len(verr.Expected) != len(tt.expected) {
				t.Errorf("Expected = %v, want %v", verr.Expected, tt.expected)
			}
			if len(verr.Actual) != len(tt.actual) {
				t.Errorf("Actual = %v, want %v", verr.Actual, tt.actual)
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := rowTypeErr(7, "email", errors.New("must be a valid email address"))

	msg := err.Error()
	for _, want := range []string{"row 7", `"email"`, "must be a valid email address"} {
		if !containsStr(msg, want) {
			t.Errorf("Error() = %q, should contain %q", msg, want)
		}
	}
}

func containsStr(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
