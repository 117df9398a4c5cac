package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "y", want: YAMLFormat},
		{in: "yaml", want: YAMLFormat},
		{in: "j", want: JSONFormat},
		{in: "json", want: JSONFormat},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseFormat(%q): got %v, want ErrBadFormat", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", f, err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if back != f {
			t.Errorf("round trip of %v: got %v", f, back)
		}
	}
}
