package translate

import (
	"strings"

	"golang.org/x/text/language"
)

// MatchLanguage picks the code from available that best satisfies the
// requested candidates, in preference order, using BCP 47 matching. The
// winner is returned verbatim as it appears in available, so it can feed
// SetLanguage directly. It returns "" when nothing matches at all.
//
// Dictionary style codes with underscores ("en_US") are understood on both
// sides.
func MatchLanguage(available []string, requested ...string) string {
	if len(available) == 0 || len(requested) == 0 {
		return ""
	}

	tags := make([]language.Tag, 0, len(available))
	codes := make([]string, 0, len(available))
	for _, code := range available {
		tag, err := language.Parse(normalizeCode(code))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return ""
	}

	var wanted []language.Tag
	for _, code := range requested {
		if tag, err := language.Parse(normalizeCode(code)); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if len(wanted) == 0 {
		return ""
	}

	matcher := language.NewMatcher(tags)
	_, index, conf := matcher.Match(wanted...)
	if conf == language.No {
		return ""
	}
	return codes[index]
}

// normalizeCode rewrites a dictionary language code into the hyphenated
// form language.Parse expects.
func normalizeCode(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
}
