package stringsx_test

import (
	"reflect"
	"testing"

	"github.com/C0d3-5t3w/go-mytools/stringsx"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n ", true},
		{"a", false},
		{"  a  ", false},
	}

	for _, tt := range tests {
		if got := stringsx.IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"snake_case", "snakeCase"},
		{"long_snake_case_name", "longSnakeCaseName"},
		{"already", "already"},
		{"trailing_", "trailing"},
		{"_leading", "Leading"},
		{"double__underscore", "doubleUnderscore"},
	}

	for _, tt := range tests {
		if got := stringsx.ToCamelCase(tt.input); got != tt.want {
			t.Errorf("ToCamelCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		input string
		size  int
		want  []string
	}{
		{"", 3, nil},
		{"ab", 3, []string{"ab"}},
		{"abc", 3, []string{"abc"}},
		{"abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"abcd", 1, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		if got := stringsx.Chunks(tt.input, tt.size); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Chunks(%q, %d) = %q, want %q", tt.input, tt.size, got, tt.want)
		}
	}
}

func TestChunksPanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Chunks with size 0 did not panic")
		}
	}()
	stringsx.Chunks("abc", 0)
}
