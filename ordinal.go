package translate

import "strconv"

// OrdinalKey is the reserved dictionary key holding the ordinal suffix
// rules for a language.
const OrdinalKey = "_ordinals"

// OrdinalFunc computes the suffix for num. lastDigit carries the final
// digit of num's decimal form. Returning ok=false declines the number and
// lets the remaining rules run.
type OrdinalFunc func(num, lastDigit int) (suffix string, ok bool)

// OrdinalSpec describes the ordinal suffix rules for one language, stored
// under OrdinalKey. Resolution order: Func, Exceptions by exact number,
// ByLastDigit, Default; the first non empty suffix wins. Exceptions,
// ByLastDigit, and Default values are either a suffix string or an
// OrdinalFunc.
//
// Dictionary files express the same shape as a map:
//
//	_ordinals:
//	  default: th
//	  byLastDigit: {1: st, 2: nd, 3: rd}
//	  exceptions: {11: th, 12: th, 13: th}
type OrdinalSpec struct {
	Func        OrdinalFunc
	Exceptions  map[int]any
	ByLastDigit map[int]any
	Default     any
}

// Ordinal returns the ordinal suffix for num under the active language,
// consulting the OrdinalKey entry. A plain string entry applies to every
// number; a callable entry is invoked with num and its last digit.
// Languages without ordinal rules, and rules that decline the number,
// yield the empty string.
func (t *Translator) Ordinal(num int) string {
	e, ok := t.resolve(OrdinalKey)
	if !ok {
		return ""
	}

	digits := strconv.Itoa(num)
	lastDigit := int(digits[len(digits)-1] - '0')

	switch e.kind {
	case entryString:
		return e.str
	case entryFunc:
		return e.valueOrCall(num, lastDigit)
	case entryOrdinal:
		return e.ord.suffix(num, lastDigit)
	}
	return ""
}

// Ordinalize renders num with its suffix attached, "1st" style.
func (t *Translator) Ordinalize(num int) string {
	return strconv.Itoa(num) + t.Ordinal(num)
}

func (spec *OrdinalSpec) suffix(num, lastDigit int) string {
	if spec == nil {
		return ""
	}

	if spec.Func != nil {
		if s, ok := spec.Func(num, lastDigit); ok {
			return s
		}
	}

	if value, ok := spec.Exceptions[num]; ok {
		if s := ordinalValue(value, num, lastDigit); s != "" {
			return s
		}
	}

	// byLastDigit callables see the digit first, the full number second.
	if value, ok := spec.ByLastDigit[lastDigit]; ok {
		if s := ordinalValue(value, lastDigit, num); s != "" {
			return s
		}
	}

	return ordinalValue(spec.Default, num, lastDigit)
}

func ordinalValue(value any, a, b int) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case OrdinalFunc:
		if s, ok := v(a, b); ok {
			return s
		}
	case func(int, int) (string, bool):
		if s, ok := v(a, b); ok {
			return s
		}
	}
	return ""
}

// ordinalSpecFromMap reads the map form of an OrdinalSpec. Maps carrying
// none of the known fields are not specs and stay keyed entries.
func ordinalSpecFromMap(raw map[string]any) (*OrdinalSpec, bool) {
	spec := &OrdinalSpec{}
	found := false

	if value, ok := raw["default"]; ok {
		spec.Default = value
		found = true
	}
	if value, ok := raw["byLastDigit"]; ok {
		spec.ByLastDigit = intKeyedMap(value)
		found = true
	}
	if value, ok := raw["exceptions"]; ok {
		spec.Exceptions = intKeyedMap(value)
		found = true
	}

	if !found {
		return nil, false
	}
	return spec, true
}

// intKeyedMap converts decoder output to the int keyed rule maps OrdinalSpec
// uses. JSON objects carry string keys, YAML carries int keys inside
// map[any]any, TOML carries strings. Unparsable keys are dropped.
func intKeyedMap(value any) map[int]any {
	switch m := value.(type) {
	case nil:
		return nil
	case map[int]any:
		return m
	case map[string]any:
		out := make(map[int]any, len(m))
		for k, v := range m {
			if n, err := strconv.Atoi(k); err == nil {
				out[n] = v
			}
		}
		return out
	case map[any]any:
		out := make(map[int]any, len(m))
		for k, v := range m {
			switch key := k.(type) {
			case int:
				out[key] = v
			case int64:
				out[int(key)] = v
			case string:
				if n, err := strconv.Atoi(key); err == nil {
					out[n] = v
				}
			}
		}
		return out
	}
	return nil
}

// EnglishOrdinals returns the standard English suffix rules, ready to sit
// under OrdinalKey in a dictionary table. The teens always take "th", so a
// guard function handles them ahead of the last digit rules.
func EnglishOrdinals() *OrdinalSpec {
	return &OrdinalSpec{
		Func: func(num, lastDigit int) (string, bool) {
			rem := num % 100
			if rem < 0 {
				rem = -rem
			}
			if rem >= 11 && rem <= 13 {
				return "th", true
			}
			return "", false
		},
		ByLastDigit: map[int]any{1: "st", 2: "nd", 3: "rd"},
		Default:     "th",
	}
}
