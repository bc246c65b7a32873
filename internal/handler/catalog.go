package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rachtours/tour-reservation/internal/catalog"
)

// CatalogHandler serves the static tour catalog.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// List returns every tour in definition order plus the category list and
// the flat transport fee.  The payload is identical for every visitor,
// which is what makes the route a good fit for the response cache.
func (h *CatalogHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"tours":        h.Catalog.Tours(),
		"categories":   h.Catalog.Categories(),
		"transportFee": h.Catalog.TransportFee,
	})
}
