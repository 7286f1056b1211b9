package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apiErrors "github.com/frontdesk-org/frontdesk/errors"
	"github.com/frontdesk-org/frontdesk/forms"
	"github.com/frontdesk-org/frontdesk/store"
)

type CreateFormRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	BirthDate       string `json:"birthDate"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}

// (POST /v1/forms)
func (h *Handler) CreateForm(c echo.Context) error {
	req := CreateFormRequest{}
	if err := c.Bind(&req); err != nil {
		return apiErrors.BadRequest
	}

	form, err := h.forms.Create(c.Request().Context(), forms.Form{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		BirthDate:       req.BirthDate,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, form)
}

// (GET /v1/forms)
func (h *Handler) ListForms(c echo.Context) error {
	filter := &forms.Filter{}
	if status := c.QueryParam("status"); status != "" {
		filter.Status = &status
	}
	if from := c.QueryParam("from"); from != "" {
		filter.DateFrom = &from
	}
	if to := c.QueryParam("to"); to != "" {
		filter.DateTo = &to
	}

	list, err := h.forms.List(c.Request().Context(), filter, store.DefaultPagination())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// (GET /v1/forms/{formId})
func (h *Handler) GetForm(c echo.Context, formId string) error {
	form, err := h.forms.Get(c.Request().Context(), formId)
	if err != nil {
		return mapFormError(err)
	}

	return c.JSON(http.StatusOK, form)
}

// (POST /v1/forms/{formId}/submit)
func (h *Handler) SubmitForm(c echo.Context, formId string) error {
	form, err := h.forms.Submit(c.Request().Context(), formId)
	if err != nil {
		return mapFormError(err)
	}

	return c.JSON(http.StatusOK, form)
}

// (POST /v1/forms/{formId}/process)
func (h *Handler) ProcessForm(c echo.Context, formId string) error {
	form, err := h.forms.Process(c.Request().Context(), formId)
	if err != nil {
		return mapFormError(err)
	}

	return c.JSON(http.StatusOK, form)
}

// (DELETE /v1/forms/{formId})
func (h *Handler) DeleteForm(c echo.Context, formId string) error {
	if err := h.forms.Remove(c.Request().Context(), formId); err != nil {
		return mapFormError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func mapFormError(err error) error {
	switch {
	case errors.Is(err, forms.ErrNotFound):
		return apiErrors.NotFound
	case errors.Is(err, forms.ErrInvalidTransition):
		return apiErrors.ConstraintViolation
	default:
		return err
	}
}
