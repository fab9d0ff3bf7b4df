package handler

import (
	"net/http"

	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/bookburst/bookburst-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) SearchBooks(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "search query is required")
	}
	_, limit, err := pagingParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	books, err := h.svc.SearchBooks(ctx, query, limit)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) AddBook(c echo.Context) error {
	ctx := c.Request().Context()

	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, created, err := h.svc.AddBook(ctx, userName, req)
	if err != nil {
		return svcError(err)
	}
	if created {
		return c.JSON(http.StatusCreated, book)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) GetBook(c echo.Context) error {
	ctx := c.Request().Context()

	bookUid := c.Param("bookUid")
	detail, err := h.svc.GetBook(ctx, bookUid)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) RescanBook(c echo.Context) error {
	ctx := c.Request().Context()

	bookUid := c.Param("bookUid")
	book, err := h.svc.RescanBookRating(ctx, bookUid)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, book)
}
