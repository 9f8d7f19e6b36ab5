package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
)

type OwnerLoginRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

type OwnerSessionResponse struct {
	Active bool   `json:"active"`
	Mobile string `json:"mobile,omitempty"`
}

// ownerLoginHandler godoc
//
//	@Summary		Owner login
//	@Description	Normalizes the mobile number and checks the owner allow-list
//	@Tags			owner
//	@Accept			json
//	@Produce		json
//	@Param			request	body		OwnerLoginRequest	true	"Login request"
//	@Success		200		{object}	OwnerSessionResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		429		{object}	map[string]string
//	@Router			/owner/login [post]
func (app *application) ownerLoginHandler(w http.ResponseWriter, r *http.Request) {
	if app.config.rateLimiter.Enabled {
		allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr)
		if !allow {
			app.rateLimitExceededResponse(w, r, strconv.Itoa(int(retryAfter.Seconds()))+"s")
			return
		}
	}

	var req OwnerLoginRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	mobile, err := app.sessions.Login(r.Context(), req.Mobile)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFormat):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrNotAuthorized):
			app.unauthorizedErrorResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := OwnerSessionResponse{
		Active: true,
		Mobile: mobile,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ownerLogoutHandler godoc
//
//	@Summary		Owner logout
//	@Description	Clears the owner session unconditionally
//	@Tags			owner
//	@Produce		json
//	@Success		200	{object}	OwnerSessionResponse
//	@Router			/owner/logout [post]
func (app *application) ownerLogoutHandler(w http.ResponseWriter, r *http.Request) {
	app.sessions.Logout(r.Context())

	if err := app.jsonRespone(w, http.StatusOK, OwnerSessionResponse{Active: false}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ownerSessionHandler godoc
//
//	@Summary		Owner session state
//	@Tags			owner
//	@Produce		json
//	@Success		200	{object}	OwnerSessionResponse
//	@Router			/owner/session [get]
func (app *application) ownerSessionHandler(w http.ResponseWriter, r *http.Request) {
	response := OwnerSessionResponse{
		Active: app.sessions.Active(),
		Mobile: app.sessions.Mobile(),
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
