package handler

import (
	"net/http"

	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/bookburst/bookburst-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()

	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.svc.CreateReview(ctx, userName, req)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *Handler) GetBookReviews(c echo.Context) error {
	ctx := c.Request().Context()

	page, limit, err := pagingParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reviews, err := h.svc.ListBookReviews(ctx, c.Param("bookUid"), page, limit)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *Handler) GetUserReviews(c echo.Context) error {
	ctx := c.Request().Context()

	page, limit, err := pagingParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reviews, err := h.svc.ListUserReviews(ctx, c.Param("username"), page, limit)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}
