package handlers

import (
	"errors"

	"lendshare/internal/core/domain"
	"lendshare/internal/core/services"
	"lendshare/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles the borrow/return endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// StatusResponse represents a workflow confirmation body
type StatusResponse struct {
	Status string `json:"status"`
}

// BorrowItem handles borrowing an item
// @Summary Borrow an item
// @Description Borrow an available item, debiting the borrower's points
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body services.BorrowInput true "Loan data"
// @Success 200 {object} StatusResponse
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /loans/ [post]
func (h *LoanHandler) BorrowItem(c *fiber.Ctx) error {
	var input services.BorrowInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "corpo da requisição inválido")
	}

	if _, err := h.loanService.Borrow(c.Context(), &input); err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return response.NotFound(c, "Item não encontrado")
		case errors.Is(err, domain.ErrItemOnLoan):
			return response.Conflict(c, "Item já está emprestado")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "Usuário (borrower_id) não encontrado")
		case errors.Is(err, domain.ErrInsufficientPoints):
			return response.Forbidden(c, "Pontos insuficientes para pegar emprestado")
		default:
			return response.InternalServerError(c, "Erro ao atualizar item")
		}
	}

	return response.OK(c, StatusResponse{Status: "item emprestado com sucesso"})
}

// ReturnItem handles returning an item
// @Summary Return an item
// @Description Mark an item available again
// @Tags Loans
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} response.ErrorBody
// @Router /loans/return/{item_id} [post]
func (h *LoanHandler) ReturnItem(c *fiber.Ctx) error {
	itemID := c.Params("item_id")

	if err := h.loanService.Return(c.Context(), itemID); err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return response.NotFound(c, "Item não encontrado")
		default:
			return response.InternalServerError(c, "Erro ao atualizar item")
		}
	}

	return response.OK(c, StatusResponse{Status: "item devolvido com sucesso"})
}

// ListLoans handles listing the loan audit trail
// @Summary List loans
// @Tags Loans
// @Produce json
// @Success 200 {array} domain.Loan
// @Router /loans/ [get]
func (h *LoanHandler) ListLoans(c *fiber.Ctx) error {
	loans, err := h.loanService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar empréstimos")
	}
	return response.OK(c, loans)
}
