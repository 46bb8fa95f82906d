package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", JSONFormat},
		{"j", JSONFormat},
		{"yaml", YAMLFormat},
		{"yml", YAMLFormat},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %s", tc.in, got)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("%s round trips to %s", f, back)
		}
	}
	if _, err := Format(9).MarshalText(); err == nil {
		t.Error("expected error")
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.json":     JSONFormat,
		"x/b.yaml":   YAMLFormat,
		"c.yml":      YAMLFormat,
		"noext":      JSONFormat,
		"d.YAML.bak": JSONFormat,
	}
	for p, want := range tests {
		if got := FromPath(p); got != want {
			t.Errorf("%s: got %s", p, got)
		}
	}
}
