package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rachtours/tour-reservation/internal/model"
	"github.com/rachtours/tour-reservation/internal/repository"
)

// AdminHandler serves the operator dashboard: listing, inspecting and
// transitioning reservations plus the aggregate stats panel.  All routes
// sit behind the AdminAuth middleware.
type AdminHandler struct {
	Repo *repository.ReservationRepo
}

func NewAdminHandler(repo *repository.ReservationRepo) *AdminHandler {
	return &AdminHandler{Repo: repo}
}

const dbTimeout = 10 * time.Second

// parseID reads the :id param and rejects anything that is not a
// positive integer.  A failed parse writes the 400 itself and returns ok
// false.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		_ = c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Invalid reservation ID. Must be a positive integer.",
		})
		return 0, false
	}
	return id, true
}

// Stats returns the dashboard aggregates.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	st, err := h.Repo.Stats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to fetch dashboard statistics",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": st})
}

// List returns reservations newest first with optional status and search
// filters.  An unknown status value is ignored rather than erroring so a
// stale dashboard filter still returns data.
func (h *AdminHandler) List(c echo.Context) error {
	f := repository.ListFilter{Search: c.QueryParam("search")}
	if s := c.QueryParam("status"); model.ValidStatus(s) {
		f.Status = s
	}
	f.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	f.Offset, _ = strconv.Atoi(c.QueryParam("offset"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	rows, err := h.Repo.List(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to fetch reservations",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": rows})
}

// Get returns one reservation by id.
func (h *AdminHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	res, err := h.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false, "message": "Reservation not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to fetch reservation",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": res})
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus moves a reservation through its lifecycle.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil || !model.ValidStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "Invalid status. Use: pending, confirmed, cancelled, successful",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	err := h.Repo.UpdateStatus(ctx, id, req.Status)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false, "message": "Reservation not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to update reservation",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true, "message": "Reservation " + req.Status,
	})
}

// Delete removes a reservation permanently.
func (h *AdminHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	err := h.Repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{
			"success": false, "message": "Reservation not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to delete reservation",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Reservation deleted"})
}
