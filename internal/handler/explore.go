package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Trending(c echo.Context) error {
	ctx := c.Request().Context()

	page, limit, err := pagingParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	books, err := h.svc.Trending(ctx, c.QueryParam("genre"), page, limit)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) TopRated(c echo.Context) error {
	ctx := c.Request().Context()

	page, limit, err := pagingParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	books, err := h.svc.TopRated(ctx, c.QueryParam("genre"), page, limit)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) MostWishlisted(c echo.Context) error {
	ctx := c.Request().Context()

	page, limit, err := pagingParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	books, err := h.svc.MostWishlisted(ctx, page, limit)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) RecentReviews(c echo.Context) error {
	ctx := c.Request().Context()

	page, limit, err := pagingParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reviews, err := h.svc.RecentReviews(ctx, page, limit)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}
