package storage

import (
	"errors"
	"regexp"
	"strings"

	"recipe-chat/internal/pkg/common"
)

// Recipe is the persisted recipe entity. JSON field names follow the wire
// format of the deployed product (Polish column names).
type Recipe struct {
	ID           int    `json:"id"`
	Name         string `json:"nazwa"`
	Ingredients  string `json:"skladniki"`
	Instructions string `json:"opis"`
	PrepTime     string `json:"czas"`
	Tags         string `json:"tagi"`
	VideoLink    string `json:"link_filmu"`
	PageLink     string `json:"link_strony"`
}

// RecipeFields are the mutable fields of a recipe, as submitted by the
// admin surface or the one-shot generator.
type RecipeFields struct {
	Name         string `json:"nazwa"`
	Ingredients  string `json:"skladniki"`
	Instructions string `json:"opis"`
	PrepTime     string `json:"czas"`
	Tags         string `json:"tagi"`
	VideoLink    string `json:"link_filmu"`
	PageLink     string `json:"link_strony"`
}

// Normalize trims every field and caps link lengths.
func (f RecipeFields) Normalize() RecipeFields {
	return RecipeFields{
		Name:         common.SafeString(f.Name),
		Ingredients:  common.SafeString(f.Ingredients),
		Instructions: common.SafeString(f.Instructions),
		PrepTime:     common.SafeString(f.PrepTime),
		Tags:         common.SafeString(f.Tags),
		VideoLink:    common.SafeLink(f.VideoLink),
		PageLink:     common.SafeLink(f.PageLink),
	}
}

// Feedback is one append-only feedback log entry.
type Feedback struct {
	ID             int    `json:"id"`
	Timestamp      string `json:"ts"`
	UserText       string `json:"user_text"`
	Option1Title   string `json:"option1_title"`
	Option1Recipe  *int   `json:"option1_recipe_id"`
	Option2Title   string `json:"option2_title"`
	Option2Recipe  *int   `json:"option2_recipe_id"`
	Action         string `json:"action"`
	ChosenIndex    *int   `json:"chosen_index"`
	FollowUpAnswer string `json:"follow_up_answer"`
}

// ErrRecipeNotFound is returned by lookups and mutations on missing ids.
var ErrRecipeNotFound = errors.New("recipe not found")

// Store is the recipe persistence contract. Implementations return recipes
// ordered by descending id from ListRecipes.
type Store interface {
	ListRecipes() ([]Recipe, error)
	GetRecipe(id int) (*Recipe, error)
	CreateRecipe(fields RecipeFields) (*Recipe, error)
	UpdateRecipe(id int, fields RecipeFields) (*Recipe, error)
	DeleteRecipe(id int) (bool, error)
	CountRecipes() (int, error)

	AppendFeedback(fb Feedback) error
	CountFeedback() (int, error)

	// Backend names the active implementation ("mysql" or "file").
	Backend() string
	Close() error
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// safeIdentifier returns value if it is a plain SQL identifier, else fallback.
func safeIdentifier(value, fallback string) string {
	if identifierPattern.MatchString(strings.TrimSpace(value)) {
		return strings.TrimSpace(value)
	}
	return fallback
}
