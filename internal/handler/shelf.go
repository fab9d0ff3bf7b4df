package handler

import (
	"net/http"

	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/bookburst/bookburst-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) GetShelf(c echo.Context) error {
	ctx := c.Request().Context()

	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	status := model.Status(c.QueryParam("status"))
	switch status {
	case "", model.StatusReading, model.StatusFinished, model.StatusWantToRead:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
	}

	shelf, err := h.svc.ListShelf(ctx, userName, status)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, shelf)
}

func (h *Handler) UpsertShelf(c echo.Context) error {
	ctx := c.Request().Context()

	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.UpsertShelfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, created, err := h.svc.UpsertShelf(ctx, userName, req)
	if err != nil {
		return svcError(err)
	}
	if created {
		return c.JSON(http.StatusCreated, entry)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) UpdateShelfEntry(c echo.Context) error {
	ctx := c.Request().Context()

	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.UpdateShelfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.svc.UpdateShelfEntry(ctx, userName, c.Param("userBookUid"), req)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) DeleteShelfEntry(c echo.Context) error {
	ctx := c.Request().Context()

	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	if err := h.svc.DeleteShelfEntry(ctx, userName, c.Param("userBookUid")); err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book removed from shelf"})
}

func (h *Handler) Timeline(c echo.Context) error {
	ctx := c.Request().Context()

	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	timeline, err := h.svc.Timeline(ctx, userName)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, timeline)
}
