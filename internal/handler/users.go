package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.svc.Profile(ctx, c.Param("username"))
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, profile)
}
