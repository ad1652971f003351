package handler

import (
	"github.com/labstack/echo/v4"

	"staffdir/internal/model"
	"staffdir/internal/service"
)

// DepartmentHandler handles department endpoints.
type DepartmentHandler struct {
	svc service.DepartmentService
}

// NewDepartmentHandler creates a new department handler.
func NewDepartmentHandler(svc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{svc: svc}
}

// AddDepartment godoc
// @Summary Create department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body model.Department true "Department payload, id is ignored"
// @Success 200 {object} response.Envelope{data=model.Department}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /department [post]
func (h *DepartmentHandler) AddDepartment(c echo.Context) error {
	payload, err := bindBody[model.Department](c)
	if err != nil {
		return err
	}
	department, err := h.svc.AddDepartment(c.Request().Context(), payload)
	if err != nil {
		return err
	}
	return ok(c, department)
}

// UpdateDepartment godoc
// @Summary Replace department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param department body model.Department true "Department payload, id must equal the path id"
// @Success 200 {object} response.Envelope{data=model.Department}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /department/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	payload, err := bindBody[model.Department](c)
	if err != nil {
		return err
	}
	department, err := h.svc.UpdateDepartment(c.Request().Context(), id, payload)
	if err != nil {
		return err
	}
	return ok(c, department)
}

// GetDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} response.Envelope{data=[]model.Department}
// @Failure 500 {object} response.Envelope
// @Router /department [get]
func (h *DepartmentHandler) GetDepartments(c echo.Context) error {
	departments, err := h.svc.GetDepartments(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, departments)
}

// GetDepartment godoc
// @Summary Get department by id
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} response.Envelope{data=model.Department}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /department/{id} [get]
func (h *DepartmentHandler) GetDepartment(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	department, err := h.svc.GetDepartmentByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, department)
}
