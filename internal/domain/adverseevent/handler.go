package adverseevent

import (
	"net/http"
	"strconv"

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
	e.POST("/adverse-events", h.CreateAdverseEvent)
	e.GET("/adverse-events", h.ListAdverseEvents)
}

func (h *Handler) CreateAdverseEvent(c echo.Context) error {
	var ev AdverseEvent
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateAdverseEvent(c.Request().Context(), &ev); err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusCreated, ev)
}

func (h *Handler) ListAdverseEvents(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.QueryParam("patient_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}

	events, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return errs.HTTP(err)
	}
	if events == nil {
		events = []*AdverseEvent{}
	}
	return c.JSON(http.StatusOK, events)
}
