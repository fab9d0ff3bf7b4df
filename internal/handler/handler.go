package handler

import (
	"net/http"
	"strconv"

	md "github.com/bookburst/bookburst-service/pkg/middleware"

	"github.com/bookburst/bookburst-service/internal/errs"
	"github.com/bookburst/bookburst-service/pkg/validate"
	_ "github.com/bookburst/bookburst-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	svc BookburstService
	log *zap.Logger
}

func New(svc BookburstService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	pub := api.Group("", md.OptionalJwtAuthentication)
	pub.GET("/books/:bookUid", h.GetBook)
	pub.GET("/reviews/book/:bookUid", h.GetBookReviews)
	pub.GET("/reviews/user/:username", h.GetUserReviews)
	pub.GET("/explore/trending", h.Trending)
	pub.GET("/explore/top-rated", h.TopRated)
	pub.GET("/explore/wishlisted", h.MostWishlisted)
	pub.GET("/explore/reviews", h.RecentReviews)
	pub.GET("/users/:username", h.GetProfile)

	authed := api.Group("", md.JwtAuthentication)
	authed.GET("/books/search", h.SearchBooks)
	authed.POST("/books", h.AddBook)
	authed.POST("/books/:bookUid/rescan", h.RescanBook)

	authed.GET("/shelf", h.GetShelf)
	authed.POST("/shelf", h.UpsertShelf)
	authed.GET("/shelf/timeline", h.Timeline)
	authed.PUT("/shelf/:userBookUid", h.UpdateShelfEntry)
	authed.DELETE("/shelf/:userBookUid", h.DeleteShelfEntry)

	authed.POST("/reviews", h.CreateReview)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// svcError maps the service's sentinel errors onto HTTP statuses.
func svcError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrNotShelved):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func pagingParams(c echo.Context) (page, limit int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return 0, 0, errors.New("page is invalid")
		}
	}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if limit, err = strconv.Atoi(limitParam); err != nil {
			return 0, 0, errors.New("limit is invalid")
		}
	}
	return page, limit, nil
}
