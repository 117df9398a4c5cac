package token

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestDefault_ParseIndex(t *testing.T) {
	tests := []struct {
		name    string
		step    string
		want    int
		wantErr bool
		wrapped bool // expect a wrapped strconv error
	}{
		{name: "simple", step: "[0]", want: 0},
		{name: "multi digit", step: "[42]", want: 42},
		{name: "empty brackets", step: "[]", wantErr: true},
		{name: "no brackets", step: "7", wantErr: true},
		{name: "missing close", step: "[7", wantErr: true},
		{name: "missing open", step: "7]", wantErr: true},
		{name: "not an integer", step: "[x]", wantErr: true, wrapped: true},
		{name: "negative", step: "[-1]", wantErr: true, wrapped: true},
		{name: "inner space", step: "[ 1]", wantErr: true, wrapped: true},
		{name: "overflow", step: "[99999999999999999999]", wantErr: true, wrapped: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Default{}.ParseIndex(tc.step)
			if tc.wantErr {
				var ie *IndexError
				if !errors.As(err, &ie) {
					t.Fatalf("ParseIndex(%q): got %v, want *IndexError", tc.step, err)
				}
				if ie.Input != tc.step {
					t.Errorf("IndexError.Input = %q, want %q", ie.Input, tc.step)
				}
				if tc.wrapped != (ie.Err != nil) {
					t.Errorf("IndexError.Err = %v, wrapped = %t", ie.Err, tc.wrapped)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIndex(%q): %v", tc.step, err)
			}
			if got != tc.want {
				t.Errorf("ParseIndex(%q) = %d, want %d", tc.step, got, tc.want)
			}
		})
	}
}

func TestDefault_ParseIndexIntBounds(t *testing.T) {
	// the accepted range tracks the platform int width, never
	// truncating
	maxInt := uint64(1)<<(strconv.IntSize-1) - 1
	got, err := Default{}.ParseIndex(fmt.Sprintf("[%d]", maxInt))
	if err != nil {
		t.Fatalf("ParseIndex(max int): %v", err)
	}
	if uint64(got) != maxInt {
		t.Errorf("ParseIndex(max int) = %d, want %d", got, maxInt)
	}
	var ie *IndexError
	if _, err := (Default{}).ParseIndex(fmt.Sprintf("[%d]", maxInt+1)); !errors.As(err, &ie) {
		t.Errorf("ParseIndex(max int + 1): got %v, want *IndexError", err)
	}
}

func TestDefault_Split(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		step     string
		rest     string
		hasRest  bool
		emptyKey bool
	}{
		{name: "single step", path: "a", step: "a"},
		{name: "two steps", path: "a.b", step: "a", rest: "b", hasRest: true},
		{name: "leftmost wins", path: "a.b.c", step: "a", rest: "b.c", hasRest: true},
		{name: "index step", path: "[0].name", step: "[0]", rest: "name", hasRest: true},
		{name: "trailing separator", path: "a.", step: "a", rest: "", hasRest: true},
		{name: "empty", path: "", emptyKey: true},
		{name: "whitespace step", path: "   .test", emptyKey: true},
		{name: "leading separator", path: ".a", emptyKey: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st, err := Default{}.Split(tc.path)
			if tc.emptyKey {
				if !errors.Is(err, ErrEmptyKey) {
					t.Fatalf("Split(%q): got %v, want ErrEmptyKey", tc.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Split(%q): %v", tc.path, err)
			}
			if st.Step != tc.step {
				t.Errorf("Step = %q, want %q", st.Step, tc.step)
			}
			if tc.hasRest != (st.Rest != nil) {
				t.Fatalf("Rest = %v, want present = %t", st.Rest, tc.hasRest)
			}
			if tc.hasRest && *st.Rest != tc.rest {
				t.Errorf("Rest = %q, want %q", *st.Rest, tc.rest)
			}
		})
	}
}

func TestDefault_SplitRoundTrip(t *testing.T) {
	// reassembling step and remainder with the separator restores the
	// input
	for _, path := range []string{"a", "a.b", "a.b.c", "[0].x.[1]", "x.[3]"} {
		st, err := Default{}.Split(path)
		if err != nil {
			t.Fatalf("Split(%q): %v", path, err)
		}
		got := st.Step
		if st.Rest != nil {
			got += "." + *st.Rest
		}
		if got != path {
			t.Errorf("round trip of %q: got %q", path, got)
		}
	}
}
