package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
	apperr "github.com/maxmeneghini/D20CharSheet/internal/errors"
	"github.com/maxmeneghini/D20CharSheet/internal/services/sheet"
)

// SheetHandler serves the character sheet API.
type SheetHandler struct {
	service sheet.Service
	logger  *zap.Logger
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	SheetService sheet.Service // Required
	Logger       *zap.Logger   // Optional, will use no-op if nil
}

// NewSheetHandler creates a new sheet handler
func NewSheetHandler(cfg *HandlerConfig) *SheetHandler {
	if cfg.SheetService == nil {
		panic("sheet service is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SheetHandler{
		service: cfg.SheetService,
		logger:  logger,
	}
}

// CreateSheetRequest creates a new sheet for an owner
type CreateSheetRequest struct {
	OwnerID string `json:"owner_id" binding:"required"`
	Name    string `json:"name"`
}

// HPEventRequest carries the amount for a heal or damage button press
type HPEventRequest struct {
	Amount int `json:"amount"`
}

// TagRequest carries one tag list entry
type TagRequest struct {
	Value string `json:"value" binding:"required"`
}

// UpdateSkillsRequest replaces the skill table
type UpdateSkillsRequest struct {
	Skills []character.Skill `json:"skills"`
}

// ErrorResponse is the JSON body for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateSheet handles POST /api/v1/sheets
func (h *SheetHandler) CreateSheet(c *gin.Context) {
	var req CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "owner_id is required"})
		return
	}

	created, err := h.service.CreateSheet(c.Request.Context(), &sheet.CreateSheetInput{
		OwnerID: req.OwnerID,
		Name:    req.Name,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListSheets handles GET /api/v1/sheets?owner=
func (h *SheetHandler) ListSheets(c *gin.Context) {
	owner := c.Query("owner")

	list, err := h.service.ListSheets(c.Request.Context(), owner)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetSheet handles GET /api/v1/sheets/:id
func (h *SheetHandler) GetSheet(c *gin.Context) {
	got, err := h.service.GetSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, got)
}

// UpdateSheet handles PUT /api/v1/sheets/:id
func (h *SheetHandler) UpdateSheet(c *gin.Context) {
	var record character.Character
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed sheet body"})
		return
	}
	record.ID = c.Param("id")

	updated, err := h.service.UpdateSheet(c.Request.Context(), &sheet.UpdateSheetInput{Sheet: &record})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteSheet handles DELETE /api/v1/sheets/:id
func (h *SheetHandler) DeleteSheet(c *gin.Context) {
	if err := h.service.DeleteSheet(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDerived handles GET /api/v1/sheets/:id/derived
func (h *SheetHandler) GetDerived(c *gin.Context) {
	derived, err := h.service.GetDerived(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, derived)
}

// Heal handles POST /api/v1/sheets/:id/heal
func (h *SheetHandler) Heal(c *gin.Context) {
	h.applyEvent(c, func(amount int) character.Event {
		return character.HealEvent{Amount: amount}
	})
}

// Damage handles POST /api/v1/sheets/:id/damage
func (h *SheetHandler) Damage(c *gin.Context) {
	h.applyEvent(c, func(amount int) character.Event {
		return character.DamageEvent{Amount: amount}
	})
}

func (h *SheetHandler) applyEvent(c *gin.Context, build func(int) character.Event) {
	var req HPEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed amount"})
		return
	}

	updated, err := h.service.ApplyEvent(c.Request.Context(), &sheet.ApplyEventInput{
		SheetID: c.Param("id"),
		Event:   build(req.Amount),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// AddTag handles POST /api/v1/sheets/:id/tags/:list
func (h *SheetHandler) AddTag(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "value is required"})
		return
	}

	updated, err := h.service.AddTag(c.Request.Context(), &sheet.TagInput{
		SheetID: c.Param("id"),
		List:    character.TagList(c.Param("list")),
		Value:   req.Value,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RemoveTag handles DELETE /api/v1/sheets/:id/tags/:list?value=
func (h *SheetHandler) RemoveTag(c *gin.Context) {
	updated, err := h.service.RemoveTag(c.Request.Context(), &sheet.TagInput{
		SheetID: c.Param("id"),
		List:    character.TagList(c.Param("list")),
		Value:   c.Query("value"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateSkills handles PUT /api/v1/sheets/:id/skills
func (h *SheetHandler) UpdateSkills(c *gin.Context) {
	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed skills body"})
		return
	}

	updated, err := h.service.UpdateSkills(c.Request.Context(), &sheet.UpdateSkillsInput{
		SheetID: c.Param("id"),
		Skills:  req.Skills,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ExportSheet handles GET /api/v1/sheets/:id/export and streams the JSON
// document as a download.
func (h *SheetHandler) ExportSheet(c *gin.Context) {
	out, err := h.service.ExportSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, "application/json", out.Data)
}

// ModifierPreviewResponse is the live modifier shown next to an ability
// score input.
type ModifierPreviewResponse struct {
	Modifier  int    `json:"modifier"`
	Formatted string `json:"formatted"`
}

// PreviewModifier handles GET /api/v1/modifier?score=. A score that does
// not parse as an integer previews as +0 rather than failing, so the page
// never breaks while the user is mid-edit.
func (h *SheetHandler) PreviewModifier(c *gin.Context) {
	mod := character.ModifierFromString(c.Query("score"))
	c.JSON(http.StatusOK, ModifierPreviewResponse{
		Modifier:  mod,
		Formatted: character.FormatModifier(mod),
	})
}

// respondError maps application error codes onto HTTP statuses.
func (h *SheetHandler) respondError(c *gin.Context, err error) {
	switch apperr.GetCode(err) {
	case apperr.CodeNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperr.CodeInvalidArgument, apperr.CodeValidation:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperr.CodeAlreadyExists:
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
