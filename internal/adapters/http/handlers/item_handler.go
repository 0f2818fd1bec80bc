package handlers

import (
	"errors"

	"lendshare/internal/core/domain"
	"lendshare/internal/core/services"
	"lendshare/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles item catalog endpoints
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItem handles item creation
// @Summary Create an item
// @Description Create a lendable item and credit the owner lending points
// @Tags Items
// @Accept json
// @Produce json
// @Param body body services.CreateItemInput true "Item data"
// @Success 201 {object} domain.Item
// @Failure 404 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /items/ [post]
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var input services.CreateItemInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "corpo da requisição inválido")
	}

	item, err := h.itemService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOwnerNotFound):
			return response.NotFound(c, "owner_id não encontrado")
		case errors.Is(err, domain.ErrEmptyName):
			return response.UnprocessableEntity(c, "nome não pode ser vazio")
		default:
			return response.InternalServerError(c, "Erro ao criar item")
		}
	}

	return response.Created(c, item)
}

// ListItems handles listing all items
// @Summary List items
// @Tags Items
// @Produce json
// @Success 200 {array} domain.Item
// @Router /items/ [get]
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.itemService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar itens")
	}
	return response.OK(c, items)
}
