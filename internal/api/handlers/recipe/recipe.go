// Package recipe exposes the recipe collection: a public read endpoint and
// the admin CRUD surface.
package recipe

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"
)

type Handler struct {
	store storage.Store
}

func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store}
}

func recipeID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Niepoprawne ID przepisu."})
		return 0, false
	}
	return id, true
}

// PublicGet serves one recipe without authentication.
func (h *Handler) PublicGet(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	h.respondRecipe(c, id)
}

// List returns the whole collection, newest first.
func (h *Handler) List(c *gin.Context) {
	recipes, err := h.store.ListRecipes()
	if err != nil {
		common.LogError("recipe list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
		return
	}
	if recipes == nil {
		recipes = []storage.Recipe{}
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// Get serves one recipe for the admin surface.
func (h *Handler) Get(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	h.respondRecipe(c, id)
}

// Create adds a recipe. Name and ingredients are required.
func (h *Handler) Create(c *gin.Context) {
	fields, ok := h.decodeFields(c)
	if !ok {
		return
	}

	recipe, err := h.store.CreateRecipe(fields)
	if err != nil {
		common.LogError("recipe create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// Update replaces a recipe's fields.
func (h *Handler) Update(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	fields, ok := h.decodeFields(c)
	if !ok {
		return
	}

	recipe, err := h.store.UpdateRecipe(id, fields)
	if err != nil {
		if errors.Is(err, storage.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": common.ErrNotFound.Message})
			return
		}
		common.LogError("recipe update failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// Delete removes a recipe.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteRecipe(id)
	if err != nil {
		common.LogError("recipe delete failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": common.ErrNotFound.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) respondRecipe(c *gin.Context, id int) {
	recipe, err := h.store.GetRecipe(id)
	if err != nil {
		if errors.Is(err, storage.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": common.ErrNotFound.Message})
			return
		}
		common.LogError("recipe lookup failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *Handler) decodeFields(c *gin.Context) (storage.RecipeFields, bool) {
	var fields storage.RecipeFields
	if err := common.DecodeJSON(c.Request.Body, &fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
		return storage.RecipeFields{}, false
	}
	fields = fields.Normalize()
	if fields.Name == "" || fields.Ingredients == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nazwa i skladniki sa wymagane."})
		return storage.RecipeFields{}, false
	}
	return fields, true
}
