package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// fileState is the on-disk layout of the JSON store.
type fileState struct {
	Recipes        []Recipe   `json:"recipes"`
	Feedback       []Feedback `json:"feedback"`
	NextRecipeID   int        `json:"nextRecipeId"`
	NextFeedbackID int        `json:"nextFeedbackId"`
}

// FileStore keeps the whole collection in one JSON file, rewritten on every
// mutation. Fine for the collection sizes this product sees (hundreds of
// recipes); reads are served from memory.
type FileStore struct {
	mu    sync.RWMutex
	path  string
	state fileState
}

// NewFileStore loads (or creates) the JSON store at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaultState() fileState {
	return fileState{
		Recipes:        []Recipe{},
		Feedback:       []Feedback{},
		NextRecipeID:   1,
		NextFeedbackID: 1,
	}
}

func (s *FileStore) load() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.state = defaultState()
		return s.persistLocked()
	}
	if err != nil {
		return fmt.Errorf("failed to read store file: %w", err)
	}

	var parsed fileState
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("failed to parse store file: %w", err)
	}

	s.state = normalizeState(parsed)
	return nil
}

// normalizeState repairs a loaded state: drops recipes without a positive id,
// restores ascending id order and recomputes the id counters.
func normalizeState(raw fileState) fileState {
	state := defaultState()

	for _, r := range raw.Recipes {
		if r.ID <= 0 {
			continue
		}
		fields := RecipeFields{
			Name:         r.Name,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
			PrepTime:     r.PrepTime,
			Tags:         r.Tags,
			VideoLink:    r.VideoLink,
			PageLink:     r.PageLink,
		}.Normalize()
		state.Recipes = append(state.Recipes, recipeFrom(r.ID, fields))
	}
	sort.Slice(state.Recipes, func(i, j int) bool {
		return state.Recipes[i].ID < state.Recipes[j].ID
	})

	state.Feedback = append(state.Feedback, raw.Feedback...)

	maxRecipeID := 0
	for _, r := range state.Recipes {
		if r.ID > maxRecipeID {
			maxRecipeID = r.ID
		}
	}
	maxFeedbackID := 0
	for _, f := range state.Feedback {
		if f.ID > maxFeedbackID {
			maxFeedbackID = f.ID
		}
	}

	state.NextRecipeID = maxRecipeID + 1
	if raw.NextRecipeID > state.NextRecipeID {
		state.NextRecipeID = raw.NextRecipeID
	}
	state.NextFeedbackID = maxFeedbackID + 1
	if raw.NextFeedbackID > state.NextFeedbackID {
		state.NextFeedbackID = raw.NextFeedbackID
	}

	return state
}

func recipeFrom(id int, fields RecipeFields) Recipe {
	return Recipe{
		ID:           id,
		Name:         fields.Name,
		Ingredients:  fields.Ingredients,
		Instructions: fields.Instructions,
		PrepTime:     fields.PrepTime,
		Tags:         fields.Tags,
		VideoLink:    fields.VideoLink,
		PageLink:     fields.PageLink,
	}
}

func (s *FileStore) persistLocked() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

// ListRecipes returns all recipes ordered by descending id.
func (s *FileStore) ListRecipes() ([]Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Recipe, len(s.state.Recipes))
	copy(out, s.state.Recipes)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// GetRecipe returns the recipe with the given id, or ErrRecipeNotFound.
func (s *FileStore) GetRecipe(id int) (*Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.state.Recipes {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, ErrRecipeNotFound
}

// CreateRecipe appends a new recipe, assigning the next id.
func (s *FileStore) CreateRecipe(fields RecipeFields) (*Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe := recipeFrom(s.state.NextRecipeID, fields.Normalize())
	s.state.NextRecipeID++
	s.state.Recipes = append(s.state.Recipes, recipe)
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	out := recipe
	return &out, nil
}

// UpdateRecipe replaces the mutable fields of an existing recipe.
func (s *FileStore) UpdateRecipe(id int, fields RecipeFields) (*Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.state.Recipes {
		if r.ID != id {
			continue
		}
		s.state.Recipes[i] = recipeFrom(id, fields.Normalize())
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		out := s.state.Recipes[i]
		return &out, nil
	}
	return nil, ErrRecipeNotFound
}

// DeleteRecipe removes a recipe; the id is never reused.
func (s *FileStore) DeleteRecipe(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.state.Recipes {
		if r.ID != id {
			continue
		}
		s.state.Recipes = append(s.state.Recipes[:i], s.state.Recipes[i+1:]...)
		if err := s.persistLocked(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// CountRecipes returns the number of stored recipes.
func (s *FileStore) CountRecipes() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Recipes), nil
}

// AppendFeedback appends one feedback entry, assigning its id.
func (s *FileStore) AppendFeedback(fb Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fb.ID = s.state.NextFeedbackID
	s.state.NextFeedbackID++
	s.state.Feedback = append(s.state.Feedback, fb)
	return s.persistLocked()
}

// CountFeedback returns the number of feedback entries.
func (s *FileStore) CountFeedback() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Feedback), nil
}

// Backend names the implementation.
func (s *FileStore) Backend() string {
	return "file"
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}
