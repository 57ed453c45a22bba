package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// version is bumped on release.
const version = "0.3.0"

// MetaHandler serves the service banner and version endpoints.
type MetaHandler struct {
	appName     string
	environment string
}

func NewMetaHandler(appName, environment string) *MetaHandler {
	return &MetaHandler{appName: appName, environment: environment}
}

// Root handles GET / — a small service banner.
//
// @Summary      Service banner
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *MetaHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":        h.appName,
		"environment": h.environment,
	})
}

// Version handles GET /version.
//
// @Summary      Service version
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /version [get]
func (h *MetaHandler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"version": version,
	})
}
