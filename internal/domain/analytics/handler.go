package analytics

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oculareg/oculareg/internal/platform/errs"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/analytics/bcva-filtered", h.BCVASeries)
	e.GET("/analytics/injection-bcva", h.InjectionAverages)
	e.GET("/analytics/fluid", h.FluidCounts)
	e.GET("/analytics/hard-hrf", h.LesionCounts)
	e.GET("/export/pdf", h.ExportPDF)
}

func (h *Handler) BCVASeries(c echo.Context) error {
	f, err := FilterFromContext(c)
	if err != nil {
		return errs.HTTP(err)
	}
	points, err := h.svc.BCVASeries(c.Request().Context(), f)
	if err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusOK, points)
}

func (h *Handler) InjectionAverages(c echo.Context) error {
	f, err := FilterFromContext(c)
	if err != nil {
		return errs.HTTP(err)
	}
	groups, err := h.svc.InjectionAverages(c.Request().Context(), f)
	if err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusOK, groups)
}

func (h *Handler) FluidCounts(c echo.Context) error {
	f, err := FilterFromContext(c)
	if err != nil {
		return errs.HTTP(err)
	}
	counts, err := h.svc.FluidCounts(c.Request().Context(), f)
	if err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *Handler) LesionCounts(c echo.Context) error {
	f, err := FilterFromContext(c)
	if err != nil {
		return errs.HTTP(err)
	}
	counts, err := h.svc.LesionCounts(c.Request().Context(), f)
	if err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *Handler) ExportPDF(c echo.Context) error {
	f, err := FilterFromContext(c)
	if err != nil {
		return errs.HTTP(err)
	}
	rows, err := h.svc.ExportRows(c.Request().Context(), f)
	if err != nil {
		return errs.HTTP(err)
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, f, rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render report")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="RWE_Report.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
