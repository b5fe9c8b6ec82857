// Package match implements the prompt-to-recipe matching engine: text
// normalization, a heuristic Polish stemmer, fuzzy scoring and candidate
// ranking. Everything here is pure and deterministic.
package match

import (
	"regexp"
	"strings"
	"unicode"

	"recipe-chat/internal/storage"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopWords are short function words plus domain filler ("przepis", "obiad")
// that carry no matching signal. Tokens are compared after diacritic folding.
var stopWords = map[string]struct{}{
	"oraz": {}, "albo": {}, "dla": {}, "tego": {}, "te": {}, "ten": {},
	"jest": {}, "bede": {}, "bedzie": {}, "chce": {}, "chcialbym": {},
	"szukam": {}, "mam": {}, "ktore": {}, "ktory": {}, "ktora": {},
	"czy": {}, "jak": {}, "jaki": {}, "jakie": {}, "jakis": {},
	"moze": {}, "prosze": {}, "potrzebuje": {},
	"na": {}, "do": {}, "po": {}, "od": {}, "z": {}, "ze": {},
	"i": {}, "a": {}, "o": {}, "w": {}, "we": {},
	"danie": {}, "dania": {}, "potrawa": {}, "potrawy": {},
	"przepis": {}, "przepisy": {}, "przepisu": {},
	"posilek": {}, "posilki": {}, "jedzenie": {},
	"obiad": {}, "kolacja": {}, "sniadanie": {},
}

// tokenSuffixes is an ordered list of inflectional endings tried on each
// token; at most one is stripped. Order matters: longer, more specific
// suffixes come first.
var tokenSuffixes = []string{
	"owego", "owych", "owym", "owej", "owie",
	"kami", "kach",
	"ami", "ach", "owi", "iem",
	"em", "om", "ie",
	"a", "u", "y", "i", "e",
}

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)

var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// NormalizePhrase folds text to its canonical comparable form: diacritics
// removed, lower-cased, every run of non-alphanumerics collapsed to one
// space, trimmed. Idempotent; empty input yields empty output.
func NormalizePhrase(text string) string {
	folded, _, err := transform.String(diacriticFolder, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)
	folded = nonAlnumPattern.ReplaceAllString(folded, " ")
	return strings.TrimSpace(folded)
}

// Stem strips at most one known suffix, keeping a stem of at least 4
// characters, then drops a single trailing vowel from long stems. This is a
// crude approximation of Polish inflection, not a morphological analyzer;
// LooselyMatch absorbs its false negatives.
func Stem(token string) string {
	for _, suffix := range tokenSuffixes {
		if len(token)-len(suffix) < 4 {
			continue
		}
		if !strings.HasSuffix(token, suffix) {
			continue
		}
		token = token[:len(token)-len(suffix)]
		break
	}

	if len(token) > 5 && strings.ContainsRune("aeiouy", rune(token[len(token)-1])) {
		token = token[:len(token)-1]
	}

	return token
}

func isStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

func keepToken(token string) bool {
	return len(token) > 2 && !isStopWord(token)
}

// TokenizePrompt normalizes, splits and stems a free-text prompt. The
// length/stop-word filter runs both before and after stemming, since
// stemming can shorten a token below the threshold or reveal a stop word.
func TokenizePrompt(text string) []string {
	normalized := NormalizePhrase(text)
	if normalized == "" {
		return nil
	}

	var tokens []string
	for _, token := range strings.Split(normalized, " ") {
		if !keepToken(token) {
			continue
		}
		stemmed := Stem(token)
		if !keepToken(stemmed) {
			continue
		}
		tokens = append(tokens, stemmed)
	}
	return tokens
}

// TokenizeRecipeFields tokenizes the searchable fields of a recipe: name,
// tags and ingredients. Instructions are excluded to bias matching toward
// nameable terms. Recipe tokens skip the stop-word filter; a stop word on
// the recipe side can never match a filtered prompt token anyway.
func TokenizeRecipeFields(recipe storage.Recipe) []string {
	normalized := NormalizePhrase(recipe.Name + " " + recipe.Tags + " " + recipe.Ingredients)
	if normalized == "" {
		return nil
	}

	var tokens []string
	for _, token := range strings.Split(normalized, " ") {
		stemmed := Stem(token)
		if len(stemmed) > 2 {
			tokens = append(tokens, stemmed)
		}
	}
	return tokens
}

// LooselyMatch reports whether two normalized tokens refer to the same word:
// equal, or one is a prefix (length >= 4) of the other. This compensates for
// stemmer imprecision and partial-word prompts.
func LooselyMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if len(a) >= 4 && strings.HasPrefix(b, a) {
		return true
	}
	if len(b) >= 4 && strings.HasPrefix(a, b) {
		return true
	}
	return false
}
