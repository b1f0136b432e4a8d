package consultation

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/internal/platform/validate"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/consultas")
	g.POST("", h.Create)
	g.POST("/criar", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.Patch)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var req Request
	if err := validate.Bind(c, &req); err != nil {
		return apperr.HTTPError(err)
	}
	cons, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, cons)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	if len(items) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Nenhuma consulta encontrada.")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c echo.Context) error {
	cons, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, cons)
}

func (h *Handler) Update(c echo.Context) error {
	var req Request
	if err := validate.Bind(c, &req); err != nil {
		return apperr.HTTPError(err)
	}
	cons, err := h.svc.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, cons)
}

func (h *Handler) Patch(c echo.Context) error {
	var p Patch
	if err := validate.Bind(c, &p); err != nil {
		return apperr.HTTPError(err)
	}
	cons, err := h.svc.Patch(c.Request().Context(), c.Param("id"), &p)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, cons)
}

func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Consulta com ID " + id + " foi deletada com sucesso.",
	})
}
