package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rachtours/tour-reservation/internal/catalog"
	"github.com/rachtours/tour-reservation/internal/selection"
)

// sessionHeader identifies a visitor's browsing session.  The storefront
// generates a random id on first load and sends it with every call.
const sessionHeader = "X-Session-ID"

// SelectionHandler exposes the tour selection as a small REST surface.
// Every request rebuilds the State from the session store, applies one
// mutation and answers with the full selection view, so the client never
// has to reconcile partial updates.
type SelectionHandler struct {
	Catalog  *catalog.Catalog
	Provider selection.StoreProvider
}

func NewSelectionHandler(cat *catalog.Catalog, p selection.StoreProvider) *SelectionHandler {
	return &SelectionHandler{Catalog: cat, Provider: p}
}

type addTourReq struct {
	TourID string `json:"tourId"`
}

type transportReq struct {
	HasTransport bool `json:"hasTransport"`
}

type toggleCategoryReq struct {
	Category string `json:"category"`
}

// state restores the session's selection.  A missing session header is a
// client bug and yields nil plus an already-written 400 response.
func (h *SelectionHandler) state(c echo.Context) (*selection.State, error) {
	sid := c.Request().Header.Get(sessionHeader)
	if sid == "" {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Missing " + sessionHeader + " header",
		})
	}
	st := selection.New(h.Catalog, h.Provider.For(sid))
	if err := st.Restore(c.Request().Context()); err != nil {
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to load selection",
		})
	}
	return st, nil
}

// view answers with the complete selection plus a priced breakdown for
// the guest count given in the query (default 1).
func (h *SelectionHandler) view(c echo.Context, st *selection.State) error {
	guests := 1
	if g := c.QueryParam("guests"); g != "" {
		if n, err := strconv.Atoi(g); err == nil && n > 0 {
			guests = n
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":             true,
		"selectedTours":       st.Selected(),
		"transportSelections": st.Transport(),
		"breakdown":           st.Breakdown(guests),
	})
}

// Get returns the current selection.
func (h *SelectionHandler) Get(c echo.Context) error {
	st, err := h.state(c)
	if st == nil {
		return err
	}
	return h.view(c, st)
}

// Add selects a tour.  Unknown ids are ignored, matching the pricing
// layer's tolerance for stale catalogs.
func (h *SelectionHandler) Add(c echo.Context) error {
	st, err := h.state(c)
	if st == nil {
		return err
	}
	var req addTourReq
	if err := c.Bind(&req); err != nil || req.TourID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "tourId is required"})
	}
	if err := st.Add(c.Request().Context(), req.TourID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to save selection"})
	}
	return h.view(c, st)
}

// Remove unselects a tour and drops its transport flag.
func (h *SelectionHandler) Remove(c echo.Context) error {
	st, err := h.state(c)
	if st == nil {
		return err
	}
	if err := st.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to save selection"})
	}
	return h.view(c, st)
}

// SetTransport sets or clears the transport request for one tour.
// Requesting transport for an unselected tour selects it as well.
func (h *SelectionHandler) SetTransport(c echo.Context) error {
	st, err := h.state(c)
	if st == nil {
		return err
	}
	var req transportReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if err := st.SetTransport(c.Request().Context(), c.Param("id"), req.HasTransport); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to save selection"})
	}
	return h.view(c, st)
}

// ToggleCategory selects or deselects a whole category at once.
func (h *SelectionHandler) ToggleCategory(c echo.Context) error {
	st, err := h.state(c)
	if st == nil {
		return err
	}
	var req toggleCategoryReq
	if err := c.Bind(&req); err != nil || req.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "category is required"})
	}
	if err := st.ToggleCategory(c.Request().Context(), req.Category); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to save selection"})
	}
	return h.view(c, st)
}

// Clear empties the selection.
func (h *SelectionHandler) Clear(c echo.Context) error {
	st, err := h.state(c)
	if st == nil {
		return err
	}
	if err := st.Clear(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to save selection"})
	}
	return h.view(c, st)
}
