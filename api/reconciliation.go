package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apiErrors "github.com/frontdesk-org/frontdesk/errors"
	"github.com/frontdesk-org/frontdesk/reconcile"
)

type LinkFormRequest struct {
	FormId string `json:"formId"`
}

// (GET /v1/reconciliation)
func (h *Handler) GetReconciliation(c echo.Context) error {
	dateRange, err := dateRangeFromQuery(c)
	if err != nil {
		return err
	}
	forceRefresh := c.QueryParam("refresh") == "true"

	result, err := h.reconciler.Reconcile(c.Request().Context(), dateRange, forceRefresh)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, NewReconciliationDto(result))
}

// (POST /v1/appointments/{appointmentId}/confirmation)
func (h *Handler) ConfirmSuggestion(c echo.Context, appointmentId string) error {
	req := LinkFormRequest{}
	if err := c.Bind(&req); err != nil {
		return apiErrors.BadRequest
	}

	err := h.workflow.ConfirmSuggestion(c.Request().Context(), appointmentId, req.FormId)
	if err != nil {
		return mapWorkflowError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// (POST /v1/appointments/{appointmentId}/link)
func (h *Handler) ManualLink(c echo.Context, appointmentId string) error {
	req := LinkFormRequest{}
	if err := c.Bind(&req); err != nil {
		return apiErrors.BadRequest
	}

	err := h.workflow.ManualLink(c.Request().Context(), appointmentId, req.FormId)
	if err != nil {
		return mapWorkflowError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// (POST /v1/appointments/{appointmentId}/skip)
func (h *Handler) SkipSuggestion(c echo.Context, appointmentId string) error {
	if err := h.workflow.Skip(c.Request().Context(), appointmentId); err != nil {
		return mapWorkflowError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// (GET /v1/appointments/{appointmentId}/candidates)
func (h *Handler) GetCandidates(c echo.Context, appointmentId string) error {
	dateRange, err := dateRangeFromQuery(c)
	if err != nil {
		return err
	}

	candidates, err := h.workflow.Candidates(c.Request().Context(), dateRange, appointmentId)
	if err != nil {
		return mapWorkflowError(err)
	}

	return c.JSON(http.StatusOK, NewCandidateDtos(candidates))
}

func dateRangeFromQuery(c echo.Context) (reconcile.DateRange, error) {
	dateRange := reconcile.DateRange{
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
	}
	if dateRange.From == "" || dateRange.To == "" {
		return dateRange, apiErrors.BadRequest
	}
	return dateRange, nil
}

func mapWorkflowError(err error) error {
	switch {
	case errors.Is(err, reconcile.ErrInvalidIdentifier):
		return apiErrors.BadRequest
	case errors.Is(err, reconcile.ErrUnknownForm), errors.Is(err, reconcile.ErrUnknownAppointment):
		return apiErrors.NotFound
	default:
		return err
	}
}
