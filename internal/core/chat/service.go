// Package chat implements the option synthesizer: it blends database
// matches, a required exact-name match, a language-model completion and the
// static fallback catalog into a deterministic two-option response.
package chat

import (
	"context"

	"recipe-chat/internal/core/ai/groq"
	"recipe-chat/internal/core/catalog"
	"recipe-chat/internal/core/match"
	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"

	"go.uber.org/zap"
)

// optionCount is the number of options every synthesis call returns.
const optionCount = 2

// Completer is the completion collaborator contract.
type Completer interface {
	HasCredential() bool
	Complete(ctx context.Context, messages []common.ChatTurn, opts groq.Options) (string, error)
}

// OptionsResult is the chat-options response.
type OptionsResult struct {
	AssistantText string          `json:"assistantText"`
	Options       []common.Option `json:"options"`
}

// Service orchestrates option synthesis over the recipe store and the
// completion collaborator.
type Service struct {
	store     storage.Store
	completer Completer
}

// NewService creates the chat service.
func NewService(store storage.Store, completer Completer) *Service {
	return &Service{
		store:     store,
		completer: completer,
	}
}

// GenerateOptions runs one synthesis round for the prompt and returns the
// assistant text plus exactly two options. A missing completion credential
// routes to the deterministic fallback path; a failed completion call is
// propagated to the caller.
func (s *Service) GenerateOptions(ctx context.Context, prompt string, history []common.ChatTurn, excludedIDs []int) (*OptionsResult, error) {
	prompt = common.SafeString(prompt)
	if prompt == "" {
		return nil, common.NewValidationError("Pole prompt jest wymagane.")
	}

	allRecipes, err := s.store.ListRecipes()
	if err != nil {
		return nil, err
	}

	excluded := make(map[int]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	available := make([]storage.Recipe, 0, len(allRecipes))
	for _, recipe := range allRecipes {
		if _, skip := excluded[recipe.ID]; !skip {
			available = append(available, recipe)
		}
	}

	required := match.FindRequiredNameMatch(prompt, available, excluded)
	strong := match.RankMatches(prompt, available, excluded, 4, match.StrongMatchMinScore)

	allowedIDs := make(map[int]struct{}, len(strong)+1)
	for _, recipe := range strong {
		allowedIDs[recipe.ID] = struct{}{}
	}
	if required != nil {
		allowedIDs[required.ID] = struct{}{}
	}
	hasDBMatch := len(allowedIDs) > 0

	if !s.completer.HasCredential() {
		return s.fallbackOptions(prompt, available, excluded, required, hasDBMatch), nil
	}

	messages := buildMessages(prompt, history, available, required, allowedIDs, hasDBMatch, excludedIDs)
	raw, err := s.completer.Complete(ctx, messages, groq.Options{StrictJSON: true})
	if err != nil {
		// Tried and failed is distinct from chose-not-to-call: surface it.
		return nil, err
	}

	options, usedIDs := s.reconcileModelOptions(raw, prompt, available, allowedIDs, hasDBMatch)

	if required != nil {
		if _, used := usedIDs[required.ID]; !used {
			options = forceRequiredOption(options, *required)
			usedIDs[required.ID] = struct{}{}
		}
	}

	if hasDBMatch && len(options) < optionCount {
		for _, recipe := range strong {
			if len(options) >= optionCount {
				break
			}
			if _, used := usedIDs[recipe.ID]; used {
				continue
			}
			options = append(options, optionFromRecipe(recipe, "To danie jest zgodne z Twoim zapytaniem."))
			usedIDs[recipe.ID] = struct{}{}
		}
	}

	options = fillFromCatalog(prompt, options)
	options = padWithFiller(options)

	return &OptionsResult{
		AssistantText: assistantText(required != nil, hasDBMatch),
		Options:       options[:optionCount],
	}, nil
}

// fallbackOptions is the pure deterministic path used when no completion
// credential is configured.
func (s *Service) fallbackOptions(prompt string, available []storage.Recipe, excluded map[int]struct{},
	required *storage.Recipe, hasDBMatch bool) *OptionsResult {

	var options []common.Option
	used := make(map[int]struct{})

	if required != nil {
		options = append(options, optionFromRecipe(*required, "To danie ma nazwe bardzo podobna do Twojego zapytania."))
		used[required.ID] = struct{}{}
	}

	matched := match.RankMatches(prompt, available, excluded, optionCount, match.StrongMatchMinScore)
	for _, recipe := range matched {
		if len(options) >= optionCount {
			break
		}
		if _, skip := used[recipe.ID]; skip {
			continue
		}
		options = append(options, optionFromRecipe(recipe, "To danie pasuje do Twojego zapytania."))
		used[recipe.ID] = struct{}{}
	}

	options = fillFromCatalog(prompt, options)
	options = padWithFiller(options)

	return &OptionsResult{
		AssistantText: assistantText(required != nil, hasDBMatch),
		Options:       options[:optionCount],
	}
}

// reconcileModelOptions validates the model's options against the allowed-id
// set: database-backed options are rebuilt from the authoritative record,
// and fresh dishes are rejected when they shadow an existing recipe while
// the system believes there is no database match.
func (s *Service) reconcileModelOptions(raw, prompt string, available []storage.Recipe,
	allowedIDs map[int]struct{}, hasDBMatch bool) ([]common.Option, map[int]struct{}) {

	parsed := parseModelOutput(raw)

	recipeByID := make(map[int]storage.Recipe, len(available))
	for _, recipe := range available {
		recipeByID[recipe.ID] = recipe
	}

	var options []common.Option
	usedIDs := make(map[int]struct{})

	for _, item := range parsed {
		option := item.normalized()

		if option.RecipeID != nil {
			recipe, ok := recipeByID[*option.RecipeID]
			if ok {
				if _, allowed := allowedIDs[recipe.ID]; allowed {
					why := option.Why
					if why == "" {
						why = "To danie pasuje do Twojego zapytania."
					}
					options = append(options, optionFromRecipe(recipe, why))
					usedIDs[recipe.ID] = struct{}{}
				}
			}
			if len(options) >= optionCount {
				break
			}
			continue
		}

		if !hasDBMatch && s.shadowsExistingRecipe(option.Title, available) {
			common.LogDebug("rejected model option shadowing a stored recipe",
				zap.String("title", option.Title),
			)
			continue
		}

		options = append(options, option)
		if len(options) >= optionCount {
			break
		}
	}

	return options, usedIDs
}

// shadowsExistingRecipe reports whether a model-proposed title is in fact a
// near-duplicate of a stored recipe.
func (s *Service) shadowsExistingRecipe(title string, available []storage.Recipe) bool {
	title = common.SafeString(title)
	if title == "" {
		return false
	}
	for _, recipe := range available {
		if match.Score(title, recipe) >= match.StrongMatchMinScore {
			return true
		}
	}
	return false
}

// forceRequiredOption guarantees the required name match is among the final
// options: prepended when a slot is free, otherwise replacing the first
// non-database option, otherwise the second option outright.
func forceRequiredOption(options []common.Option, required storage.Recipe) []common.Option {
	requiredOption := optionFromRecipe(required, "To danie ma nazwe najbardziej zblizona do Twojego zapytania.")

	if len(options) < optionCount {
		return append([]common.Option{requiredOption}, options...)
	}
	for i, option := range options {
		if option.RecipeID == nil {
			options[i] = requiredOption
			return options
		}
	}
	options[1] = requiredOption
	return options
}

// fillFromCatalog tops the options up to two from the fallback catalog,
// skipping titles already chosen.
func fillFromCatalog(prompt string, options []common.Option) []common.Option {
	if len(options) >= optionCount {
		return options
	}
	titles := make([]string, 0, len(options))
	for _, option := range options {
		titles = append(titles, option.Title)
	}
	return append(options, catalog.PickFallback(prompt, optionCount-len(options), titles)...)
}

// padWithFiller appends canned generic options until two exist. Only
// reachable if catalog de-duplication exhausted the whole catalog.
func padWithFiller(options []common.Option) []common.Option {
	for len(options) < optionCount {
		options = append(options, common.Option{
			RecipeID:     nil,
			Title:        "Klasyczne danie domowe",
			Why:          "Awaryjna propozycja oparta o sprawdzone przepisy.",
			Ingredients:  "Podaj konkretne skladniki, a przygotuje bardziej precyzyjna liste.",
			Instructions: "Dopytaj o szczegoly i poziom trudnosci, a doprecyzuje przygotowanie.",
			Time:         "25-35 min",
		}.Normalized())
	}
	return options
}

// optionFromRecipe rebuilds an option from the authoritative recipe record.
func optionFromRecipe(recipe storage.Recipe, why string) common.Option {
	id := recipe.ID
	return common.Option{
		RecipeID:     &id,
		Title:        recipe.Name,
		Why:          why,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Time:         recipe.PrepTime,
		VideoLink:    recipe.VideoLink,
		PageLink:     recipe.PageLink,
	}.Normalized()
}

// assistantText picks the canned assistant message for the path taken.
func assistantText(hasRequired, hasDBMatch bool) string {
	if hasRequired {
		return "Mam dwie propozycje. Jedna jest dopasowana po nazwie dania, ktore wpisales."
	}
	if hasDBMatch {
		return "Mam dwie propozycje dopasowane do Twojego zapytania."
	}
	return "W bazie nie ma trafionego dania, wiec mam dwie propozycje oparte o sprawdzone przepisy z internetu."
}
