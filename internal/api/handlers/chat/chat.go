// Package chat exposes the conversational endpoints: option synthesis,
// feedback logging and one-shot recipe generation from ingredients.
package chat

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	chatcore "recipe-chat/internal/core/chat"
	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"
)

type Handler struct {
	svc   *chatcore.Service
	store storage.Store
}

func NewHandler(svc *chatcore.Service, store storage.Store) *Handler {
	return &Handler{svc: svc, store: store}
}

type optionsRequest struct {
	Prompt            string            `json:"prompt"`
	History           []common.ChatTurn `json:"history"`
	ExcludedRecipeIDs []int             `json:"excludedRecipeIds"`
}

// Options runs one synthesis round and returns the assistant text plus two
// options.
func (h *Handler) Options(c *gin.Context) {
	var req optionsRequest
	if err := common.DecodeJSON(c.Request.Body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
		return
	}

	result, err := h.svc.GenerateOptions(c.Request.Context(), req.Prompt, req.History, req.ExcludedRecipeIDs)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		common.LogError("option synthesis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

type feedbackOption struct {
	Title    string `json:"title"`
	RecipeID *int   `json:"recipe_id"`
}

type feedbackRequest struct {
	UserText       string         `json:"userText"`
	Option1        feedbackOption `json:"option1"`
	Option2        feedbackOption `json:"option2"`
	Action         string         `json:"action"`
	ChosenIndex    *int           `json:"chosenIndex"`
	FollowUpAnswer string         `json:"followUpAnswer"`
}

// Feedback appends one feedback entry to the log.
func (h *Handler) Feedback(c *gin.Context) {
	var req feedbackRequest
	if err := common.DecodeJSON(c.Request.Body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
		return
	}

	fb := storage.Feedback{
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		UserText:       common.SafeString(req.UserText),
		Option1Title:   common.SafeString(req.Option1.Title),
		Option1Recipe:  req.Option1.RecipeID,
		Option2Title:   common.SafeString(req.Option2.Title),
		Option2Recipe:  req.Option2.RecipeID,
		Action:         common.SafeString(req.Action),
		ChosenIndex:    req.ChosenIndex,
		FollowUpAnswer: common.SafeString(req.FollowUpAnswer),
	}
	if err := h.store.AppendFeedback(fb); err != nil {
		common.LogError("feedback append failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type generateRequest struct {
	Ingredients string `json:"skladniki"`
}

// Generate asks the model for a recipe built from the given ingredients and
// stores the result.
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := common.DecodeJSON(c.Request.Body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
		return
	}

	result, err := h.svc.GenerateFromIngredients(c.Request.Context(), req.Ingredients)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		common.LogError("ingredient generation failed", zap.Error(err))
		message := err.Error()
		var custom *common.CustomError
		if errors.As(err, &custom) {
			message = custom.Message
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, result)
}
