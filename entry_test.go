package translate

import "testing"

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		kind entryKind
	}{
		{name: "string", raw: "hello", kind: entryString},
		{name: "int", raw: 42, kind: entryNumber},
		{name: "int64", raw: int64(42), kind: entryNumber},
		{name: "float", raw: 4.5, kind: entryNumber},
		{name: "string slice", raw: []string{"a", "b"}, kind: entrySeq},
		{name: "any slice", raw: []any{"a", 2}, kind: entrySeq},
		{name: "map", raw: map[string]any{"a": "b"}, kind: entryKeyed},
		{name: "named args map", raw: M{"a": "b"}, kind: entryKeyed},
		{name: "callable", raw: EntryFunc(func(args ...any) string { return "" }), kind: entryFunc},
		{name: "bare func", raw: func(args ...any) string { return "" }, kind: entryFunc},
		{name: "nil", raw: nil, kind: entryEmpty},
		{name: "unsupported", raw: struct{}{}, kind: entryEmpty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeValue("key", tc.raw); got.kind != tc.kind {
				t.Fatalf("normalizeValue(%v).kind = %d, want %d", tc.raw, got.kind, tc.kind)
			}
		})
	}
}

func TestNormalizeValueOrdinalShapes(t *testing.T) {
	shapes := []struct {
		name string
		raw  any
	}{
		{name: "struct", raw: OrdinalSpec{Default: "th"}},
		{name: "pointer", raw: &OrdinalSpec{Default: "th"}},
		{name: "callable", raw: OrdinalFunc(func(n, d int) (string, bool) { return "th", true })},
		{name: "map form", raw: map[string]any{"default": "th"}},
	}

	for _, tc := range shapes {
		t.Run(tc.name, func(t *testing.T) {
			e := normalizeValue(OrdinalKey, tc.raw)
			if e.kind != entryOrdinal {
				t.Fatalf("normalizeValue(%s).kind = %d, want entryOrdinal", tc.name, e.kind)
			}
		})
	}

	// the same map under a normal key stays a keyed entry
	if e := normalizeValue("menu", map[string]any{"default": "th"}); e.kind != entryKeyed {
		t.Fatalf("map under a plain key normalized to kind %d, want entryKeyed", e.kind)
	}

	// a map with no spec fields is not an ordinal spec even under the
	// reserved key
	if e := normalizeValue(OrdinalKey, map[string]any{"first": "st"}); e.kind != entryKeyed {
		t.Fatalf("specless map normalized to kind %d, want entryKeyed", e.kind)
	}
}

// int keys the way yaml.v3 hands them over
func TestNormalizeValueYAMLOrdinalKeys(t *testing.T) {
	raw := map[string]any{
		"default":     "th",
		"byLastDigit": map[any]any{1: "st", 2: "nd", 3: "rd"},
	}

	e := normalizeValue(OrdinalKey, raw)
	if e.kind != entryOrdinal {
		t.Fatalf("kind = %d, want entryOrdinal", e.kind)
	}
	if got := e.ord.suffix(21, 1); got != "st" {
		t.Fatalf("suffix(21, 1) = %q, want %q", got, "st")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "x", want: "x"},
		{name: "int", value: 7, want: "7"},
		{name: "float", value: 4.5, want: "4.5"},
		{name: "whole float", value: float64(3), want: "3"},
		{name: "uint", value: uint8(9), want: "9"},
		{name: "bool", value: true, want: "true"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stringify(tc.value); got != tc.want {
				t.Fatalf("stringify(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestAsIndex(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
		ok    bool
	}{
		{name: "int", value: 2, want: 2, ok: true},
		{name: "int64", value: int64(1), want: 1, ok: true},
		{name: "float", value: float64(1), want: 1, ok: true},
		{name: "digit string", value: "3", want: 3, ok: true},
		{name: "word", value: "three", ok: false},
		{name: "nil", value: nil, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := asIndex(tc.value)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("asIndex(%v) = %d, %v want %d, %v", tc.value, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestValueOrCall(t *testing.T) {
	str := entry{kind: entryString, str: "value"}
	if got := str.valueOrCall(); got != "value" {
		t.Fatalf("string valueOrCall = %q, want %q", got, "value")
	}

	fn := entry{kind: entryFunc, fn: func(args ...any) string { return "called" }}
	if got := fn.valueOrCall("x"); got != "called" {
		t.Fatalf("func valueOrCall = %q, want %q", got, "called")
	}

	if got := (entry{}).valueOrCall(); got != "" {
		t.Fatalf("empty valueOrCall = %q, want empty", got)
	}
}
