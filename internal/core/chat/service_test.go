package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"recipe-chat/internal/core/ai/groq"
	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"
)

type fakeStore struct {
	recipes  []storage.Recipe
	feedback []storage.Feedback
	nextID   int
}

func newFakeStore(recipes ...storage.Recipe) *fakeStore {
	maxID := 0
	for _, recipe := range recipes {
		if recipe.ID > maxID {
			maxID = recipe.ID
		}
	}
	return &fakeStore{recipes: recipes, nextID: maxID + 1}
}

func (f *fakeStore) ListRecipes() ([]storage.Recipe, error) {
	out := make([]storage.Recipe, len(f.recipes))
	copy(out, f.recipes)
	return out, nil
}

func (f *fakeStore) GetRecipe(id int) (*storage.Recipe, error) {
	for _, recipe := range f.recipes {
		if recipe.ID == id {
			out := recipe
			return &out, nil
		}
	}
	return nil, storage.ErrRecipeNotFound
}

func (f *fakeStore) CreateRecipe(fields storage.RecipeFields) (*storage.Recipe, error) {
	fields = fields.Normalize()
	recipe := storage.Recipe{
		ID:           f.nextID,
		Name:         fields.Name,
		Ingredients:  fields.Ingredients,
		Instructions: fields.Instructions,
		PrepTime:     fields.PrepTime,
		Tags:         fields.Tags,
		VideoLink:    fields.VideoLink,
		PageLink:     fields.PageLink,
	}
	f.nextID++
	f.recipes = append([]storage.Recipe{recipe}, f.recipes...)
	return &recipe, nil
}

func (f *fakeStore) UpdateRecipe(id int, fields storage.RecipeFields) (*storage.Recipe, error) {
	return nil, storage.ErrRecipeNotFound
}

func (f *fakeStore) DeleteRecipe(id int) (bool, error) { return false, nil }

func (f *fakeStore) CountRecipes() (int, error) { return len(f.recipes), nil }

func (f *fakeStore) AppendFeedback(fb storage.Feedback) error {
	f.feedback = append(f.feedback, fb)
	return nil
}

func (f *fakeStore) CountFeedback() (int, error) { return len(f.feedback), nil }

func (f *fakeStore) Backend() string { return "fake" }

func (f *fakeStore) Close() error { return nil }

type stubCompleter struct {
	hasCredential bool
	reply         string
	err           error
	lastMessages  []common.ChatTurn
}

func (s *stubCompleter) HasCredential() bool { return s.hasCredential }

func (s *stubCompleter) Complete(ctx context.Context, messages []common.ChatTurn, opts groq.Options) (string, error) {
	s.lastMessages = messages
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testStoreRecipes() []storage.Recipe {
	return []storage.Recipe{
		{ID: 4, Name: "Gulasz wolowy", Ingredients: "wolowina, cebula, papryka", Instructions: "Dus do miekkosci.", PrepTime: "120 min"},
		{ID: 3, Name: "Zupa pomidorowa", Ingredients: "pomidory, makaron, smietana", Instructions: "Gotuj i zmiksuj.", PrepTime: "40 min"},
		{ID: 1, Name: "Kurczak curry", Ingredients: "kurczak, mleko kokosowe, pasta curry", Instructions: "Smaz i dus.", PrepTime: "35 min"},
	}
}

func TestGenerateOptionsEmptyPrompt(t *testing.T) {
	svc := NewService(newFakeStore(), &stubCompleter{})
	_, err := svc.GenerateOptions(context.Background(), "   ", nil, nil)
	if err == nil {
		t.Fatal("expected validation error for blank prompt")
	}
	if !common.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGenerateOptionsNoCredentialUsesRequiredMatch(t *testing.T) {
	svc := NewService(newFakeStore(testStoreRecipes()...), &stubCompleter{hasCredential: false})

	result, err := svc.GenerateOptions(context.Background(), "zupa pomidorowa", nil, nil)
	if err != nil {
		t.Fatalf("GenerateOptions failed: %v", err)
	}
	if len(result.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(result.Options))
	}

	first := result.Options[0]
	if first.RecipeID == nil || *first.RecipeID != 3 {
		t.Fatalf("expected the named recipe first, got %+v", first)
	}
	if first.Ingredients != "pomidory, makaron, smietana" {
		t.Errorf("option not rebuilt from the stored record: %q", first.Ingredients)
	}
	if !strings.Contains(result.AssistantText, "dopasowana po nazwie") {
		t.Errorf("unexpected assistant text: %q", result.AssistantText)
	}
}

func TestGenerateOptionsNoCredentialNoMatch(t *testing.T) {
	svc := NewService(newFakeStore(testStoreRecipes()...), &stubCompleter{hasCredential: false})

	result, err := svc.GenerateOptions(context.Background(), "sushi", nil, nil)
	if err != nil {
		t.Fatalf("GenerateOptions failed: %v", err)
	}
	if len(result.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(result.Options))
	}
	for _, option := range result.Options {
		if option.RecipeID != nil {
			t.Errorf("catalog path returned a database-backed option: %+v", option)
		}
	}
	if !strings.Contains(result.AssistantText, "sprawdzone przepisy z internetu") {
		t.Errorf("unexpected assistant text: %q", result.AssistantText)
	}
}

func TestGenerateOptionsTransportFailurePropagates(t *testing.T) {
	transportErr := errors.New("blad Groq HTTP 502")
	svc := NewService(newFakeStore(testStoreRecipes()...), &stubCompleter{
		hasCredential: true,
		err:           transportErr,
	})

	result, err := svc.GenerateOptions(context.Background(), "kurczak", nil, nil)
	if err == nil {
		t.Fatal("expected the completion failure to propagate")
	}
	if !errors.Is(err, transportErr) {
		t.Errorf("got %v, want wrapped %v", err, transportErr)
	}
	if result != nil {
		t.Errorf("expected nil result on failure, got %+v", result)
	}
}

func TestGenerateOptionsMalformedModelOutput(t *testing.T) {
	svc := NewService(newFakeStore(testStoreRecipes()...), &stubCompleter{
		hasCredential: true,
		reply:         "przepraszam, dzisiaj bez JSON",
	})

	result, err := svc.GenerateOptions(context.Background(), "cos slodkiego", nil, nil)
	if err != nil {
		t.Fatalf("malformed model output must degrade, not fail: %v", err)
	}
	if len(result.Options) != 2 {
		t.Fatalf("expected 2 backfilled options, got %d", len(result.Options))
	}
}

func TestGenerateOptionsRebuildsDBOptionFromStore(t *testing.T) {
	reply := `{"assistant_text":"ok","options":[` +
		`{"recipe_id":1,"title":"Kurczak curry","why":"Pasuje do kurczaka","ingredients":"cokolwiek","instructions":"cokolwiek","time":"5 min"},` +
		`{"recipe_id":null,"title":"Sushi bowl","why":"Nowosc","ingredients":"ryz, losos","instructions":"Uloz w misce.","time":"30 min"}]}`
	svc := NewService(newFakeStore(testStoreRecipes()...), &stubCompleter{hasCredential: true, reply: reply})

	result, err := svc.GenerateOptions(context.Background(), "kurczak", nil, nil)
	if err != nil {
		t.Fatalf("GenerateOptions failed: %v", err)
	}
	if len(result.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(result.Options))
	}

	first := result.Options[0]
	if first.RecipeID == nil || *first.RecipeID != 1 {
		t.Fatalf("expected database option first, got %+v", first)
	}
	if first.Ingredients != "kurczak, mleko kokosowe, pasta curry" {
		t.Errorf("database option must carry stored ingredients, got %q", first.Ingredients)
	}
	if first.Why != "Pasuje do kurczaka" {
		t.Errorf("model's why should survive, got %q", first.Why)
	}
	if result.Options[1].Title != "Sushi bowl" {
		t.Errorf("fresh dish dropped: %+v", result.Options[1])
	}
}

func TestGenerateOptionsForcesRequiredMatch(t *testing.T) {
	reply := `{"assistant_text":"ok","options":[` +
		`{"recipe_id":null,"title":"Krem brokulowy","why":"a","ingredients":"b","instructions":"c","time":"20 min"},` +
		`{"recipe_id":null,"title":"Salatka grecka","why":"a","ingredients":"b","instructions":"c","time":"15 min"}]}`
	svc := NewService(newFakeStore(testStoreRecipes()...), &stubCompleter{hasCredential: true, reply: reply})

	result, err := svc.GenerateOptions(context.Background(), "zupa pomidorowa", nil, nil)
	if err != nil {
		t.Fatalf("GenerateOptions failed: %v", err)
	}
	if len(result.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(result.Options))
	}

	found := false
	for _, option := range result.Options {
		if option.RecipeID != nil && *option.RecipeID == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("required name match missing from options: %+v", result.Options)
	}
}

func TestGenerateOptionsRejectsShadowingFreshDish(t *testing.T) {
	reply := `{"assistant_text":"ok","options":[` +
		`{"recipe_id":null,"title":"Gulasz wolowy","why":"a","ingredients":"b","instructions":"c","time":"120 min"},` +
		`{"recipe_id":null,"title":"Sushi bowl","why":"a","ingredients":"b","instructions":"c","time":"30 min"}]}`
	svc := NewService(newFakeStore(testStoreRecipes()...), &stubCompleter{hasCredential: true, reply: reply})

	// Prompt matches nothing, so a fresh dish duplicating a stored recipe
	// name must be rejected.
	result, err := svc.GenerateOptions(context.Background(), "sushi", nil, nil)
	if err != nil {
		t.Fatalf("GenerateOptions failed: %v", err)
	}
	if len(result.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(result.Options))
	}
	for _, option := range result.Options {
		if strings.EqualFold(option.Title, "Gulasz wolowy") {
			t.Errorf("shadowing fresh dish survived: %+v", option)
		}
	}
	if result.Options[0].Title != "Sushi bowl" {
		t.Errorf("legitimate fresh dish dropped: %+v", result.Options[0])
	}
}

func TestGenerateOptionsExclusionRoundTrip(t *testing.T) {
	completer := &stubCompleter{hasCredential: false}
	svc := NewService(newFakeStore(testStoreRecipes()...), completer)

	result, err := svc.GenerateOptions(context.Background(), "kurczak curry", nil, []int{1})
	if err != nil {
		t.Fatalf("GenerateOptions failed: %v", err)
	}
	for _, option := range result.Options {
		if option.RecipeID != nil && *option.RecipeID == 1 {
			t.Errorf("excluded recipe came back: %+v", option)
		}
	}
}

func TestGenerateFromIngredients(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &stubCompleter{hasCredential: true, reply: "Zrob omlet z warzywami."})

	result, err := svc.GenerateFromIngredients(context.Background(), "jajka, papryka")
	if err != nil {
		t.Fatalf("GenerateFromIngredients failed: %v", err)
	}
	if result.Text != "Zrob omlet z warzywami." {
		t.Errorf("unexpected text: %q", result.Text)
	}
	if result.Recipe == nil || !strings.HasPrefix(result.Recipe.Name, "Przepis z: ") {
		t.Errorf("generated recipe not persisted as expected: %+v", result.Recipe)
	}
	if count, _ := store.CountRecipes(); count != 1 {
		t.Errorf("expected 1 stored recipe, got %d", count)
	}
}

func TestGenerateFromIngredientsEmpty(t *testing.T) {
	svc := NewService(newFakeStore(), &stubCompleter{hasCredential: true})
	_, err := svc.GenerateFromIngredients(context.Background(), "  ")
	if !common.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGenerateFromIngredientsCompletionFailure(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &stubCompleter{hasCredential: true, err: errors.New("blad AI: pusta odpowiedz modelu")})

	_, err := svc.GenerateFromIngredients(context.Background(), "jajka")
	if err == nil {
		t.Fatal("expected completion failure to propagate")
	}
	if count, _ := store.CountRecipes(); count != 0 {
		t.Errorf("no recipe should be stored on failure, got %d", count)
	}
}
