package descriptor

import (
	"errors"
	"testing"
)

func TestParseMethod_Codes(t *testing.T) {
	tests := []struct {
		input string
		want  Method
	}{
		{"r_b", MBR},
		{"mbr", MBR},
		{"r_d", Discrepancy},
		{"r_r", RobustMBR},
		{"r_a", Agreement},
		{"r_m", Moments},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if err != nil {
				t.Fatalf("ParseMethod(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMethod(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMethod_Names(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(m.Name())
		if err != nil {
			t.Errorf("ParseMethod(%q) failed: %v", m.Name(), err)
			continue
		}
		if got != m {
			t.Errorf("ParseMethod(%q): got %v, want %v", m.Name(), got, m)
		}
	}
}

func TestParseMethod_Invalid(t *testing.T) {
	for _, input := range []string{"", "r_x", "R_B", "Mbr", " r_b", "rectangularity"} {
		_, err := ParseMethod(input)
		if err == nil {
			t.Errorf("ParseMethod(%q): expected error", input)
			continue
		}
		if !errors.Is(err, ErrInvalidMethod) {
			t.Errorf("ParseMethod(%q): error %v is not ErrInvalidMethod", input, err)
		}
	}
}

func TestMethod_CodeRoundTrip(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(m.Code())
		if err != nil {
			t.Errorf("ParseMethod(%q) failed: %v", m.Code(), err)
			continue
		}
		if got != m {
			t.Errorf("round trip of %q: got %v, want %v", m.Code(), got, m)
		}
	}
}

func TestMethods_CanonicalOrder(t *testing.T) {
	want := []string{"r_b", "r_d", "r_r", "r_a", "r_m"}

	methods := Methods()
	if len(methods) != len(want) {
		t.Fatalf("got %d methods, want %d", len(methods), len(want))
	}
	for i, m := range methods {
		if m.Code() != want[i] {
			t.Errorf("method %d: got %q, want %q", i, m.Code(), want[i])
		}
	}
}

func TestMethod_Valid(t *testing.T) {
	for _, m := range Methods() {
		if !m.Valid() {
			t.Errorf("%v should be valid", m)
		}
	}
	for _, m := range []Method{-1, 5, 99} {
		if m.Valid() {
			t.Errorf("Method(%d) should be invalid", int(m))
		}
	}
}

func TestMethod_InvalidFormatting(t *testing.T) {
	m := Method(99)
	if got := m.Code(); got != "method(99)" {
		t.Errorf("Code: got %q", got)
	}
	if got := m.Name(); got != "method(99)" {
		t.Errorf("Name: got %q", got)
	}
	if got := m.Description(); got != "" {
		t.Errorf("Description: got %q, want empty", got)
	}
}

func TestMethodInfos(t *testing.T) {
	infos := MethodInfos()
	if len(infos) != 5 {
		t.Fatalf("got %d infos, want 5", len(infos))
	}
	for i, info := range infos {
		if info.Code == "" || info.Name == "" || info.Description == "" {
			t.Errorf("info %d has empty fields: %+v", i, info)
		}
	}
	if infos[0].Code != "r_b" || infos[4].Code != "r_m" {
		t.Errorf("infos not in canonical order: %+v", infos)
	}
}

func TestMethod_String(t *testing.T) {
	if got := Discrepancy.String(); got != "r_d" {
		t.Errorf("String: got %q, want r_d", got)
	}
}
