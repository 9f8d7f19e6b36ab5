package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/koolabhinay07/Lollyzz/internal/domain"
)

var ErrInvalidID = errors.New("invalid ID format")

type UpdateItemAvailabilityRequest struct {
	Available *bool  `json:"available" validate:"required"`
	Reason    string `json:"reason"`
}

// updateItemAvailabilityHandler godoc
//
//	@Summary		Toggle item availability
//	@Description	Marks a menu item available or unavailable (owner only)
//	@Tags			availability
//	@Accept			json
//	@Produce		json
//	@Param			item_id	path		string							true	"Item ID"
//	@Param			request	body		UpdateItemAvailabilityRequest	true	"Availability update"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/items/{item_id}/availability [patch]
func (app *application) updateItemAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateItemAvailabilityRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err := app.availabilityService.SetAvailable(r.Context(), itemID, *req.Available, req.Reason, app.sessions.Mobile())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"item_id":   itemID,
		"available": *req.Available,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// resetAvailabilityHandler godoc
//
//	@Summary		Reset availability
//	@Description	Clears the overlay so every item is available (owner only)
//	@Tags			availability
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		401	{object}	map[string]string
//	@Router			/availability/reset [post]
func (app *application) resetAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	app.availabilityService.ResetAll(r.Context(), app.sessions.Mobile())

	response := map[string]interface{}{
		"success": true,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getItemAuditHandler godoc
//
//	@Summary		Get item availability audit
//	@Description	Newest availability changes for one item (owner only)
//	@Tags			availability
//	@Produce		json
//	@Param			item_id	path		string	true	"Item ID"
//	@Param			limit	query		int		false	"Max records (default 20)"
//	@Success		200		{array}		domain.AvailabilityAudit
//	@Failure		401		{object}	map[string]string
//	@Router			/items/{item_id}/audit [get]
func (app *application) getItemAuditHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			app.badRequestResponse(w, r, errors.New("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	audits, err := app.availabilityService.GetAudit(r.Context(), itemID, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}
