package translate

import (
	"errors"
	"testing"
)

func TestNewSkipsNilOptions(t *testing.T) {
	tr, err := New(nil, WithLanguage("es"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Language() != "es" {
		t.Fatalf("Language() = %q, want %q", tr.Language(), "es")
	}
}

func TestNewPropagatesOptionError(t *testing.T) {
	boom := errors.New("translate: broken loader")
	loader := LoaderFunc(func() (Dictionary, error) {
		return nil, boom
	})

	if _, err := New(WithLoader(loader)); !errors.Is(err, boom) {
		t.Fatalf("New error = %v, want the loader error", err)
	}
}

func TestWithLoaderAppendsFragment(t *testing.T) {
	ResetGlobal()
	defer ResetGlobal()

	loader := LoaderFunc(func() (Dictionary, error) {
		return Dictionary{"en_US": {"greeting": "Hello"}}, nil
	})

	tr, err := New(WithLoader(loader))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := tr.Text("greeting"); got != "Hello" {
		t.Fatalf("Text = %q, want %q", got, "Hello")
	}
}

func TestWithLoaderNil(t *testing.T) {
	if _, err := New(WithLoader(nil)); err != nil {
		t.Fatalf("New with nil loader: %v", err)
	}
}

func TestOptionOrderIndependence(t *testing.T) {
	dict := Dictionary{"es": {"greeting": "Hola"}}

	langFirst := MustNew(WithLanguage("es"), WithDictionaries(dict))
	dictFirst := MustNew(WithDictionaries(dict), WithLanguage("es"))

	if got := langFirst.Text("greeting"); got != "Hola" {
		t.Fatalf("language-first Text = %q, want %q", got, "Hola")
	}
	if got := dictFirst.Text("greeting"); got != "Hola" {
		t.Fatalf("dictionary-first Text = %q, want %q", got, "Hola")
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustNew did not panic on option error")
		}
	}()

	MustNew(WithLoader(LoaderFunc(func() (Dictionary, error) {
		return nil, errors.New("translate: broken loader")
	})))
}
