package handler

import (
	"github.com/labstack/echo/v4"

	"staffdir/internal/model"
	"staffdir/internal/service"
)

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// AddUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.User true "User payload, id and department are ignored"
// @Success 200 {object} response.Envelope{data=model.User}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /user [post]
func (h *UserHandler) AddUser(c echo.Context) error {
	payload, err := bindBody[model.User](c)
	if err != nil {
		return err
	}
	user, err := h.svc.AddUser(c.Request().Context(), payload)
	if err != nil {
		return err
	}
	return ok(c, user)
}

// UpdateUser godoc
// @Summary Replace user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body model.User true "User payload, id must equal the path id"
// @Success 200 {object} response.Envelope{data=model.User}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /user/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	payload, err := bindBody[model.User](c)
	if err != nil {
		return err
	}
	user, err := h.svc.UpdateUser(c.Request().Context(), id, payload)
	if err != nil {
		return err
	}
	return ok(c, user)
}

// GetUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} response.Envelope{data=[]model.User}
// @Failure 500 {object} response.Envelope
// @Router /user [get]
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.svc.GetUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, users)
}

// GetUser godoc
// @Summary Get user by id with its department resolved
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param eventTraceId header string false "Correlation id, generated when absent"
// @Success 200 {object} response.Envelope{data=model.User}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := bindID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, user)
}
