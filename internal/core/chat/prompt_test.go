package chat

import (
	"fmt"
	"strings"
	"testing"

	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"
)

func TestBuildMessagesShape(t *testing.T) {
	recipes := testStoreRecipes()
	required := &recipes[1] // Zupa pomidorowa
	allowed := map[int]struct{}{3: {}}

	messages := buildMessages("zupa pomidorowa", nil, recipes, required, allowed, true, []int{7})

	if len(messages) != 2 {
		t.Fatalf("expected system + user turn, got %d messages", len(messages))
	}
	if messages[0].Role != "system" {
		t.Errorf("first turn role = %q, want system", messages[0].Role)
	}
	if !strings.Contains(messages[0].Content, "DOKLADNIE 2") {
		t.Error("system prompt lost the two-option instruction")
	}

	user := messages[1].Content
	for _, want := range []string{
		"Pytanie uzytkownika: zupa pomidorowa",
		"WYMAGANE_DB_ID: 3 (Zupa pomidorowa)",
		"DOZWOLONE_DB_ID: 3",
		"CZY_JEST_DOPASOWANIE_Z_BAZY: tak",
		"ID:3 | Nazwa:Zupa pomidorowa",
		"Odrzucone ID: 7",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("user turn missing %q:\n%s", want, user)
		}
	}
	if strings.Contains(user, "ID:4") {
		t.Error("digest leaked a recipe outside the allowed set")
	}
}

func TestBuildMessagesNoMatch(t *testing.T) {
	messages := buildMessages("sushi", nil, testStoreRecipes(), nil, nil, false, nil)

	user := messages[len(messages)-1].Content
	for _, want := range []string{
		"WYMAGANE_DB_ID: brak",
		"DOZWOLONE_DB_ID: (brak)",
		"CZY_JEST_DOPASOWANIE_Z_BAZY: nie",
		"Brak dopasowanych przepisow z bazy do tego zapytania.",
		"Odrzucone ID: (brak)",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("user turn missing %q:\n%s", want, user)
		}
	}
}

func TestBuildMessagesHistoryCap(t *testing.T) {
	var history []common.ChatTurn
	for i := 0; i < 10; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, common.ChatTurn{Role: role, Content: fmt.Sprintf("tura %d", i)})
	}
	history = append(history, common.ChatTurn{Role: "tool", Content: "ignored"})

	messages := buildMessages("kurczak", history, nil, nil, nil, false, nil)

	// system + 6 history turns + user
	if len(messages) != 8 {
		t.Fatalf("expected 8 messages, got %d", len(messages))
	}
	if messages[1].Content != "tura 4" {
		t.Errorf("history not capped to the last turns: first kept = %q", messages[1].Content)
	}
	for _, m := range messages {
		if m.Role == "tool" {
			t.Error("invalid role survived history normalization")
		}
	}
}

func TestBuildDBContextTruncation(t *testing.T) {
	recipe := storage.Recipe{
		ID:           1,
		Name:         "Test",
		Ingredients:  strings.Repeat("a", 500),
		Instructions: strings.Repeat("b", 500),
	}

	line := buildDBContext([]storage.Recipe{recipe})
	if strings.Contains(line, strings.Repeat("a", 241)) {
		t.Error("ingredients not capped at 240 characters")
	}
	if strings.Contains(line, strings.Repeat("b", 181)) {
		t.Error("instructions not capped at 180 characters")
	}
	if !strings.Contains(line, "Czas:brak") || !strings.Contains(line, "Tagi:-") {
		t.Errorf("empty fields not rendered with placeholders: %s", line)
	}
}

func TestBuildDBContextEmpty(t *testing.T) {
	if got := buildDBContext(nil); got != "Brak przepisow w bazie." {
		t.Errorf("empty digest = %q", got)
	}
}

func TestBuildDBContextRowCap(t *testing.T) {
	var recipes []storage.Recipe
	for i := 1; i <= 100; i++ {
		recipes = append(recipes, storage.Recipe{ID: i, Name: fmt.Sprintf("Danie %d", i)})
	}
	digest := buildDBContext(recipes)
	if got := strings.Count(digest, "\n") + 1; got != 80 {
		t.Errorf("digest has %d rows, want 80", got)
	}
}

func TestParseModelOutputTolerantRecipeID(t *testing.T) {
	raw := `{"assistant_text":"ok","options":[` +
		`{"recipe_id":"12","title":"A","why":"w","ingredients":"i","instructions":"n","time":"5 min"},` +
		`{"recipe_id":null,"title":"B","why":"w","ingredients":"i","instructions":"n","time":"5 min"}]}`

	parsed := parseModelOutput(raw)
	if len(parsed) != 2 {
		t.Fatalf("expected 2 options, got %d", len(parsed))
	}

	first := parsed[0].normalized()
	if first.RecipeID == nil || *first.RecipeID != 12 {
		t.Errorf("quoted recipe_id not parsed: %+v", first.RecipeID)
	}
	second := parsed[1].normalized()
	if second.RecipeID != nil {
		t.Errorf("null recipe_id parsed as %v", *second.RecipeID)
	}
}

func TestParseModelOutputRepairsAlmostJSON(t *testing.T) {
	raw := `{"assistant_text":"ok","options":[{"recipe_id":null,"title":"A","why":"w","ingredients":"i","instructions":"n","time":"5 min"},]}`

	parsed := parseModelOutput(raw)
	if len(parsed) != 1 {
		t.Fatalf("expected repaired output to yield 1 option, got %d", len(parsed))
	}
	if parsed[0].Title != "A" {
		t.Errorf("unexpected option: %+v", parsed[0])
	}
}

func TestParseModelOutputGarbage(t *testing.T) {
	if parsed := parseModelOutput("definitely not json"); parsed != nil {
		t.Errorf("expected nil for unparseable output, got %v", parsed)
	}
}

func TestLooseOptionPlaceholders(t *testing.T) {
	option := looseOption{}.normalized()
	if option.Title != "Danie" {
		t.Errorf("empty title placeholder = %q", option.Title)
	}
	if option.Time != "Brak danych" {
		t.Errorf("empty time placeholder = %q", option.Time)
	}
	if option.Why != "" {
		t.Errorf("why must stay empty, got %q", option.Why)
	}
}
