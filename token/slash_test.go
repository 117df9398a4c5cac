package token

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestSlash_ParseIndex(t *testing.T) {
	tests := []struct {
		name    string
		step    string
		want    int
		wantErr bool
	}{
		{name: "zero", step: "0", want: 0},
		{name: "multi digit", step: "17", want: 17},
		{name: "empty", step: "", wantErr: true},
		{name: "not an integer", step: "x", wantErr: true},
		{name: "negative", step: "-1", wantErr: true},
		{name: "bracketed", step: "[0]", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Slash{}.ParseIndex(tc.step)
			if tc.wantErr {
				var ie *IndexError
				if !errors.As(err, &ie) {
					t.Fatalf("ParseIndex(%q): got %v, want *IndexError", tc.step, err)
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

func TestSlash_ParseIndexIntBounds(t *testing.T) {
	maxInt := uint64(1)<<(strconv.IntSize-1) - 1
	got, err := Slash{}.ParseIndex(fmt.Sprintf("%d", maxInt))
	if err != nil {
		t.Fatalf("ParseIndex(max int): %v", err)
	}
	if uint64(got) != maxInt {
		t.Errorf("ParseIndex(max int) = %d, want %d", got, maxInt)
	}
	var ie *IndexError
	if _, err := (Slash{}).ParseIndex(fmt.Sprintf("%d", maxInt+1)); !errors.As(err, &ie) {
		t.Errorf("ParseIndex(max int + 1): got %v, want *IndexError", err)
	}
}

func TestSlash_Split(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		step     string
		rest     string
		hasRest  bool
		emptyKey bool
		parseErr bool
	}{
		{name: "single step", path: "/a", step: "a"},
		{name: "two steps", path: "/a/b", step: "a", rest: "/b", hasRest: true},
		{name: "leftmost wins", path: "/a/b/c", step: "a", rest: "/b/c", hasRest: true},
		{name: "index steps", path: "/0/id", step: "0", rest: "/id", hasRest: true},
		{name: "empty", path: "", emptyKey: true},
		{name: "double separator", path: "//", emptyKey: true},
		{name: "empty middle step", path: "//a", emptyKey: true},
		{name: "whitespace step", path: "/  /a", emptyKey: true},
		{name: "missing prefix", path: "test.", parseErr: true},
		{name: "missing prefix key", path: "a/b", parseErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st, err := Slash{}.Split(tc.path)
			switch {
			case tc.emptyKey:
				if !errors.Is(err, ErrEmptyKey) {
					t.Fatalf("Split(%q): got %v, want ErrEmptyKey", tc.path, err)
				}
				return
			case tc.parseErr:
				var ke *KeyError
				if !errors.As(err, &ke) {
					t.Fatalf("Split(%q): got %v, want *KeyError", tc.path, err)
				}
				if errors.Is(err, ErrEmptyKey) {
					t.Fatalf("Split(%q): got ErrEmptyKey, want plain *KeyError", tc.path)
				}
				if ke.Input != tc.path {
					t.Errorf("KeyError.Input = %q, want %q", ke.Input, tc.path)
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

func TestSlash_SplitRoundTrip(t *testing.T) {
	for _, path := range []string{"/a", "/a/b", "/0/id/2", "/x/1"} {
		st, err := Slash{}.Split(path)
		if err != nil {
			t.Fatalf("Split(%q): %v", path, err)
		}
		got := "/" + st.Step
		if st.Rest != nil {
			got += *st.Rest
		}
		if got != path {
			t.Errorf("round trip of %q: got %q", path, got)
		}
	}
}
