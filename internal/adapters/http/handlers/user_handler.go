package handlers

import (
	"errors"

	"lendshare/internal/core/domain"
	"lendshare/internal/core/services"
	"lendshare/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user registration endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles user registration
// @Summary Register a user
// @Description Register a new user with zero points
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "User data"
// @Success 201 {object} domain.User
// @Failure 422 {object} response.ErrorBody
// @Router /users/ [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "corpo da requisição inválido")
	}

	user, err := h.userService.Register(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyName):
			return response.UnprocessableEntity(c, "nome não pode ser vazio")
		case errors.Is(err, domain.ErrInvalidEmail):
			return response.UnprocessableEntity(c, "email inválido")
		default:
			return response.InternalServerError(c, "Erro ao criar usuário")
		}
	}

	return response.Created(c, user)
}

// ListUsers handles listing all users
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} domain.User
// @Router /users/ [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar usuários")
	}
	return response.OK(c, users)
}
