package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"github.com/koolabhinay07/Lollyzz/internal/filter"
)

// getMenuHandler godoc
//
//	@Summary		Get the filtered menu
//	@Description	Recomputes the visible menu for the given filter inputs
//	@Tags			menu
//	@Produce		json
//	@Param			q					query		string	false	"Free-text search"
//	@Param			diet				query		string	false	"all, veg or non-veg"
//	@Param			categories			query		string	false	"Comma-separated section ids"
//	@Param			include_unavailable	query		bool	false	"Owner only: include unavailable items"
//	@Success		200					{object}	service.MenuView
//	@Failure		400					{object}	map[string]string
//	@Router			/menu [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	diet := domain.Diet(q.Get("diet"))
	if diet == "" {
		diet = domain.DietAll
	}
	if !diet.Valid() {
		app.badRequestResponse(w, r, fmt.Errorf("invalid diet %q", diet))
		return
	}

	var categories []string
	if raw := q.Get("categories"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				categories = append(categories, id)
			}
		}
	}

	in := filter.Input{
		Query:              q.Get("q"),
		Diet:               diet,
		Categories:         categories,
		IncludeUnavailable: q.Get("include_unavailable") == "true",
	}

	view := app.menuService.View(in, app.sessions.Active())

	if err := app.jsonRespone(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCategoriesHandler godoc
//
//	@Summary		Get category navigation
//	@Description	All menu sections in navigation preference order
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}	service.ViewSection
//	@Router			/menu/categories [get]
func (app *application) getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonRespone(w, http.StatusOK, app.menuService.Categories()); err != nil {
		app.internalServerError(w, r, err)
	}
}
