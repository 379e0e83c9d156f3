package translate

import (
	"regexp"
	"strconv"
	"strings"
)

// placeholderPattern recognizes the substitution tokens, one alternative
// per form, tried in order:
//
//	{{text}}   literal braces, inner text emitted verbatim
//	{2} {%s:2} explicit 1-based positional index
//	{} {%s}    auto incrementing positional
//	{name}     named lookup in the leading argument map
//
// Literal inner text tolerates one level of nested braces, no deeper.
var placeholderPattern = regexp.MustCompile(`\{(\{(?:[^{}]|\{[^{}]*\})*\})\}|\{(?:%s:)?([0-9]+)\}|\{(?:%s)?\}|\{([A-Za-z0-9_-]+)\}`)

// substitution tracks one pass over a template: the argument list, the
// leading named argument map when present, and the auto increment cursor.
// The cursor is local to the pass; concurrent substitutions never share it.
type substitution struct {
	args   []any
	named  map[string]any
	offset int // 1 when args[0] is the named map, it is not a positional slot
	cursor int
}

func newSubstitution(args []any) *substitution {
	sub := &substitution{args: args}
	if len(args) > 0 {
		switch bag := args[0].(type) {
		case M:
			sub.named = bag
			sub.offset = 1
		case map[string]any:
			sub.named = bag
			sub.offset = 1
		}
	}
	return sub
}

// substitute runs one placeholder pass over template. Tokens that resolve
// to nothing are replaced with the empty string; text outside tokens is
// copied through untouched.
func substitute(template string, args ...any) string {
	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template
	}

	sub := newSubstitution(args)

	var out strings.Builder
	out.Grow(len(template))

	last := 0
	for _, m := range matches {
		out.WriteString(template[last:m[0]])
		last = m[1]

		switch {
		case m[2] >= 0:
			out.WriteString(template[m[2]:m[3]])
		case m[4] >= 0:
			if index, err := strconv.Atoi(template[m[4]:m[5]]); err == nil {
				out.WriteString(sub.positional(index))
			}
		case m[6] >= 0:
			out.WriteString(sub.namedValue(template[m[6]:m[7]]))
		default:
			out.WriteString(sub.next())
		}
	}
	out.WriteString(template[last:])

	return out.String()
}

// positional reads the explicit 1-based index, shifted past the named map
// when one leads the arguments.
func (s *substitution) positional(index int) string {
	return s.render(index - 1 + s.offset)
}

// next consumes the next positional argument and advances the cursor.
func (s *substitution) next() string {
	value := s.render(s.cursor + s.offset)
	s.cursor++
	return value
}

func (s *substitution) namedValue(name string) string {
	if s.named == nil {
		return ""
	}
	value, ok := s.named[name]
	if !ok {
		return ""
	}
	return s.renderValue(value)
}

func (s *substitution) render(argIndex int) string {
	if argIndex < 0 || argIndex >= len(s.args) {
		return ""
	}
	return s.renderValue(s.args[argIndex])
}

// renderValue turns one replacement into text. Callable replacements are
// invoked, ReplacerFunc style ones with the current cursor position first.
func (s *substitution) renderValue(value any) string {
	switch fn := value.(type) {
	case ReplacerFunc:
		return stringify(fn(s.cursor, s.args...))
	case func(int, ...any) any:
		return stringify(fn(s.cursor, s.args...))
	case EntryFunc:
		return fn(s.args...)
	case func(...any) string:
		return fn(s.args...)
	}
	return stringify(value)
}

// Placeholders lists the substitution tokens template contains, in order
// of appearance and including their braces. Literal brace escapes are not
// substitution points and are skipped. Tooling uses this to compare the
// placeholder surface of translations across languages.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[2] >= 0 {
			continue
		}
		tokens = append(tokens, template[m[0]:m[1]])
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
