package translate

// Table maps translation keys to their raw entries for one language. Keys
// are opaque strings, often the source language sentence itself so the key
// doubles as its own fallback.
//
// Entry values may be:
//   - a string, possibly containing placeholder tokens
//   - a two element sequence of singular/plural forms ([]string or []any)
//   - a longer sequence, indexed by the first call argument
//   - a keyed map, indexed by the first call argument
//   - a number, rendered as its decimal form
//   - an EntryFunc
//
// The reserved key OrdinalKey additionally accepts an OrdinalFunc or an
// OrdinalSpec.
type Table map[string]any

// Dictionary maps language codes to their translation tables. One appended
// Dictionary is retained as a single fragment; later fragments win per key.
// Language codes are opaque identifiers such as "en_US" and are compared
// verbatim, no normalization happens during lookup.
type Dictionary map[string]Table

// M carries named placeholder arguments. When the first argument passed to
// Text is an M (or a plain map[string]any), {name} tokens read from it and
// positional indexes shift past it.
type M map[string]any

// EntryFunc is a callable translation entry. It receives the arguments the
// caller passed to Text and returns the final string.
type EntryFunc func(args ...any) string

// ReplacerFunc is a callable placeholder replacement. It receives the
// substitution pass's auto increment position plus the full argument
// list, and its result replaces the token. The position is read before
// the auto token consumes its slot: a func resolved by the second {}
// token sees 1.
type ReplacerFunc func(pos int, args ...any) any
