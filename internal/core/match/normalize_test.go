package match

import (
	"reflect"
	"testing"
)

func TestNormalizePhrase(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase and trim", "  Kurczak  ", "kurczak"},
		{"punctuation collapses to one space", "Kurczak,  CURRY!!", "kurczak curry"},
		{"digits survive", "przepis 123", "przepis 123"},
		{"diacritics fold", "Gęś jajeczna", "ges jajeczna"},
		{"empty", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePhrase(tc.in)
			if got != tc.want {
				t.Errorf("NormalizePhrase(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if again := NormalizePhrase(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestStem(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"pomidory", "pomidor"},
		{"kurczakiem", "kurczak"},
		{"ziemniakami", "ziemni"},
		{"cebula", "cebul"},
		{"kasza", "kasz"},
		{"zupa", "zupa"},
		{"ryz", "ryz"},
	}
	for _, tc := range cases {
		if got := Stem(tc.in); got != tc.want {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTokenizePromptDropsStopWords(t *testing.T) {
	got := TokenizePrompt("Szukam przepisu na obiad z kurczakiem")
	want := []string{"kurczak"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizePrompt = %v, want %v", got, want)
	}
}

func TestTokenizePromptEmpty(t *testing.T) {
	if got := TokenizePrompt("  !!  "); got != nil {
		t.Errorf("expected nil for punctuation-only prompt, got %v", got)
	}
}

func TestLooselyMatch(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"kurczak", "kurczak", true},
		{"kurcz", "kurczak", true},
		{"kurczak", "kurcz", true},
		{"kur", "kurczak", false},
		{"abc", "abd", false},
		{"", "kurczak", false},
	}
	for _, tc := range cases {
		if got := LooselyMatch(tc.a, tc.b); got != tc.want {
			t.Errorf("LooselyMatch(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
