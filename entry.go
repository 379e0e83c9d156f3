package translate

import (
	"fmt"
	"strconv"
)

type entryKind uint8

const (
	entryEmpty entryKind = iota
	entryString
	entryNumber
	entrySeq
	entryKeyed
	entryFunc
	entryOrdinal
)

// entry is the normalized form of one raw dictionary value. Raw values are
// classified once, at append or rebuild time, so lookups never re-inspect
// interface types. Unsupported values normalize to entryEmpty, which
// resolves to the empty string.
type entry struct {
	kind  entryKind
	str   string
	seq   []entry
	keyed map[string]entry
	fn    EntryFunc
	ord   *OrdinalSpec
}

// normalizeValue classifies one raw dictionary value. key is consulted only
// for the reserved ordinal entry, whose map form decodes into an
// OrdinalSpec instead of a keyed entry.
func normalizeValue(key string, raw any) entry {
	switch v := raw.(type) {
	case nil:
		return entry{}
	case string:
		return entry{kind: entryString, str: v}
	case EntryFunc:
		return entry{kind: entryFunc, fn: v}
	case func(...any) string:
		return entry{kind: entryFunc, fn: v}
	case OrdinalFunc:
		return entry{kind: entryOrdinal, ord: &OrdinalSpec{Func: v}}
	case func(int, int) (string, bool):
		return entry{kind: entryOrdinal, ord: &OrdinalSpec{Func: v}}
	case OrdinalSpec:
		spec := v
		return entry{kind: entryOrdinal, ord: &spec}
	case *OrdinalSpec:
		if v == nil {
			return entry{}
		}
		return entry{kind: entryOrdinal, ord: v}
	case []string:
		seq := make([]entry, len(v))
		for i, item := range v {
			seq[i] = entry{kind: entryString, str: item}
		}
		return entry{kind: entrySeq, seq: seq}
	case []any:
		seq := make([]entry, len(v))
		for i, item := range v {
			seq[i] = normalizeValue("", item)
		}
		return entry{kind: entrySeq, seq: seq}
	}

	if m, ok := stringKeyed(raw); ok {
		if key == OrdinalKey {
			if spec, ok := ordinalSpecFromMap(m); ok {
				return entry{kind: entryOrdinal, ord: spec}
			}
		}
		keyed := make(map[string]entry, len(m))
		for name, item := range m {
			keyed[name] = normalizeValue("", item)
		}
		return entry{kind: entryKeyed, keyed: keyed}
	}

	if str, ok := renderNumber(raw); ok {
		return entry{kind: entryNumber, str: str}
	}

	return entry{}
}

// valueOrCall collapses an entry to its string form: callables are invoked
// with the full argument list, plain values render as themselves, anything
// else is empty. Index style lookups and the callable ordinal form funnel
// through here.
func (e entry) valueOrCall(args ...any) string {
	switch e.kind {
	case entryString, entryNumber:
		return e.str
	case entryFunc:
		if e.fn == nil {
			return ""
		}
		return e.fn(args...)
	}
	return ""
}

// stringKeyed views raw as a string keyed map when possible. YAML decodes
// mappings with non string keys as map[any]any, so those are converted.
func stringKeyed(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true
	case M:
		return m, true
	case Table:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[stringify(k)] = v
		}
		return out, true
	}
	return nil, false
}

// stringify renders a replacement or index value as text. nil becomes the
// empty string so missing replacements never print a literal "<nil>".
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	if str, ok := renderNumber(value); ok {
		return str
	}
	return fmt.Sprintf("%v", value)
}

func renderNumber(value any) (string, bool) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}

// asIndex reads a sequence index from the first call argument. Decoded
// dictionaries hand counts over as int64 or float64 depending on format.
func asIndex(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	}
	return 0, false
}
