package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-translate"
)

type lintConfig struct {
	files     []string
	reference string
}

type fileFlag struct {
	items []string
}

func (f *fileFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *fileFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "translate-lint: %v\n", err)
	os.Exit(1)
}

func parseFlags() (lintConfig, error) {
	var cfg lintConfig
	var files fileFlag

	flag.Var(&files, "f", "dictionary file to lint (repeat flag or comma separate to add more)")
	flag.StringVar(&cfg.reference, "lang", "", "reference language every other language is compared against (default: first language, sorted)")

	flag.Parse()

	if len(files.items) == 0 {
		return lintConfig{}, errors.New("at least one -f dictionary file is required")
	}
	cfg.files = files.items

	return cfg, nil
}

func run(cfg lintConfig, out io.Writer) error {
	dict, err := translate.NewFileLoader(cfg.files...).Load()
	if err != nil {
		return err
	}

	languages := make([]string, 0, len(dict))
	for code := range dict {
		languages = append(languages, code)
	}
	sort.Strings(languages)

	if len(languages) < 2 {
		return errors.New("need at least two languages to compare")
	}

	reference := cfg.reference
	if reference == "" {
		reference = languages[0]
	}
	refTable, ok := dict[reference]
	if !ok {
		return fmt.Errorf("reference language %q not present in the loaded files", reference)
	}

	issues := 0
	for _, code := range languages {
		if code == reference {
			continue
		}
		issues += lintLanguage(out, reference, refTable, code, dict[code])
	}

	if issues > 0 {
		return fmt.Errorf("%d issue(s) found", issues)
	}

	fmt.Fprintf(out, "ok: %d languages consistent with %s\n", len(languages), reference)
	return nil
}

// lintLanguage reports keys the language is missing relative to the
// reference, keys it carries that the reference lacks, and string entries
// whose placeholder surface diverges from the reference text.
func lintLanguage(out io.Writer, refCode string, ref translate.Table, code string, table translate.Table) int {
	issues := 0

	for _, key := range sortedKeys(ref) {
		if key == translate.OrdinalKey {
			continue
		}

		value, ok := table[key]
		if !ok {
			fmt.Fprintf(out, "%s: missing key %q\n", code, key)
			issues++
			continue
		}

		refText, refIsString := ref[key].(string)
		text, isString := value.(string)
		if !refIsString || !isString {
			continue
		}
		if refSet, set := tokenSet(refText), tokenSet(text); refSet != set {
			fmt.Fprintf(out, "%s: placeholder mismatch for %q: %s has [%s], %s has [%s]\n",
				code, key, refCode, refSet, code, set)
			issues++
		}
	}

	for _, key := range sortedKeys(table) {
		if key == translate.OrdinalKey {
			continue
		}
		if _, ok := ref[key]; !ok {
			fmt.Fprintf(out, "%s: extra key %q not in %s\n", code, key, refCode)
			issues++
		}
	}

	return issues
}

func sortedKeys(table translate.Table) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// tokenSet folds a template's placeholder tokens into one comparable
// string. The sprintf spellings collapse onto their plain forms so
// "{%s:2}" and "{2}" never flag each other.
func tokenSet(text string) string {
	tokens := translate.Placeholders(text)
	if len(tokens) == 0 {
		return ""
	}

	normalized := make([]string, len(tokens))
	for i, token := range tokens {
		normalized[i] = normalizeToken(token)
	}
	sort.Strings(normalized)
	return strings.Join(normalized, " ")
}

func normalizeToken(token string) string {
	switch {
	case strings.HasPrefix(token, "{%s:"):
		return "{" + token[len("{%s:"):]
	case token == "{%s}":
		return "{}"
	}
	return token
}
