package translate

import "testing"

func TestMatchLanguage(t *testing.T) {
	available := []string{"en_US", "es", "pt_BR"}

	tests := []struct {
		name      string
		requested []string
		want      string
	}{
		{name: "exact", requested: []string{"es"}, want: "es"},
		{name: "base matches region variant", requested: []string{"en"}, want: "en_US"},
		{name: "region variant matches base", requested: []string{"es_MX"}, want: "es"},
		{name: "underscored request", requested: []string{"pt_BR"}, want: "pt_BR"},
		{name: "first preference wins", requested: []string{"es", "en"}, want: "es"},
		{name: "later preference used when first misses", requested: []string{"fr", "es"}, want: "es"},
		{name: "no match", requested: []string{"zh"}, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchLanguage(available, tc.requested...); got != tc.want {
				t.Fatalf("MatchLanguage(%v, %v) = %q, want %q", available, tc.requested, got, tc.want)
			}
		})
	}
}

func TestMatchLanguageEmptyInputs(t *testing.T) {
	if got := MatchLanguage(nil, "en"); got != "" {
		t.Fatalf("MatchLanguage(nil, en) = %q, want empty", got)
	}
	if got := MatchLanguage([]string{"en"}); got != "" {
		t.Fatalf("MatchLanguage with no candidates = %q, want empty", got)
	}
	if got := MatchLanguage([]string{"!!", "??"}, "en"); got != "" {
		t.Fatalf("MatchLanguage with unparsable availables = %q, want empty", got)
	}
}

func TestMatchLanguageFeedsSetLanguage(t *testing.T) {
	ResetGlobal()
	defer ResetGlobal()

	tr := MustNew(WithDictionaries(Dictionary{
		"en_US": {"greeting": "Hello"},
		"es":    {"greeting": "Hola"},
	}))

	if code := MatchLanguage(tr.Languages(), "es_AR", "en"); code != "" {
		tr.SetLanguage(code)
	}
	if got := tr.Text("greeting"); got != "Hola" {
		t.Fatalf("Text = %q, want %q", got, "Hola")
	}
}
