package slicesx_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/C0d3-5t3w/go-mytools/slicesx"
)

func TestAllOrEmpty(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	tests := []struct {
		name  string
		input []int
		want  bool
	}{
		{"empty", nil, true},
		{"all match", []int{2, 4, 6}, true},
		{"one fails", []int{2, 3, 6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slicesx.AllOrEmpty(tt.input, even); got != tt.want {
				t.Errorf("AllOrEmpty(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFirstLast(t *testing.T) {
	s := []string{"a", "b", "c"}

	if v, ok := slicesx.First(s); !ok || v != "a" {
		t.Errorf("First(%v) = %q, %v; want %q, true", s, v, ok, "a")
	}
	if v, ok := slicesx.Last(s); !ok || v != "c" {
		t.Errorf("Last(%v) = %q, %v; want %q, true", s, v, ok, "c")
	}

	var empty []string
	if _, ok := slicesx.First(empty); ok {
		t.Error("First(empty) reported ok")
	}
	if _, ok := slicesx.Last(empty); ok {
		t.Error("Last(empty) reported ok")
	}
}

func TestTryMap(t *testing.T) {
	got, err := slicesx.TryMap([]string{"1", "2", "3"}, strconv.Atoi)
	if err != nil {
		t.Fatalf("TryMap: got error %v, want nil", err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("TryMap = %v, want %v", got, want)
	}
}

func TestTryMapStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := slicesx.TryMap([]int{1, 2, 3}, func(n int) (int, error) {
		calls++
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("TryMap: got error %v, want %v", err, boom)
	}
	if calls != 2 {
		t.Errorf("TryMap called f %d times, want 2", calls)
	}
}
