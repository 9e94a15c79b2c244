package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atm-service/internal/api/dto"
	"github.com/spec-kit/atm-service/internal/auth"
	"github.com/spec-kit/atm-service/internal/domain"
	"github.com/spec-kit/atm-service/internal/observability"
	"github.com/spec-kit/atm-service/internal/service"
)

// AccountsHandler exposes account operations.
type AccountsHandler struct {
	accounts *service.AccountService
	audit    *service.AuditService
	metrics  *observability.Metrics
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accounts *service.AccountService, audit *service.AuditService, metrics *observability.Metrics) *AccountsHandler {
	return &AccountsHandler{accounts: accounts, audit: audit, metrics: metrics}
}

// Create handles POST /accounts.
func (h *AccountsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.accounts.CreateAccount(c.UserContext(), principal, req.OwnerID, req.InitialBalance)
	if err != nil {
		return err
	}
	h.metrics.RecordOutcome("create_account", string(result.Status))

	switch result.Status {
	case domain.CreationStatusCreated:
		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"outcome": result.Status,
			"data":    dto.NewAccountResponse(result.Account),
		})
	case domain.CreationStatusDuplicateID:
		return outcomeResponse(c, http.StatusConflict, string(result.Status))
	default:
		return outcomeResponse(c, http.StatusBadRequest, string(result.Status))
	}
}

// List handles GET /accounts.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	accounts, err := h.accounts.ListAccounts(c.UserContext(), principal, c.Query("owner_id"))
	if err != nil {
		return err
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, dto.NewAccountResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Get handles GET /accounts/:id.
func (h *AccountsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	info, err := h.accounts.GetAccount(c.UserContext(), principal, c.Params("id"))
	if err != nil {
		return err
	}

	payload := fiber.Map{"account": dto.NewAccountResponse(info.Account)}
	if info.Owner != nil {
		payload["owner"] = fiber.Map{
			"id":    info.Owner.ID,
			"login": info.Owner.Login,
			"role":  info.Owner.Role,
		}
	}
	return c.JSON(fiber.Map{"data": payload})
}

// Deposit handles POST /accounts/:id/deposit.
func (h *AccountsHandler) Deposit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.accounts.Deposit(c.UserContext(), principal, c.Params("id"), req.Amount)
	if err != nil {
		return err
	}
	h.metrics.RecordOutcome("deposit", string(result.Status))

	switch result.Status {
	case domain.DepositStatusApplied:
		return c.JSON(fiber.Map{
			"outcome": result.Status,
			"data":    fiber.Map{"new_balance": result.NewBalance},
		})
	case domain.DepositStatusAccountNotFound:
		return outcomeResponse(c, http.StatusNotFound, string(result.Status))
	case domain.DepositStatusAccountClosed:
		return outcomeResponse(c, http.StatusConflict, string(result.Status))
	default:
		return outcomeResponse(c, http.StatusBadRequest, string(result.Status))
	}
}

// Withdraw handles POST /accounts/:id/withdraw.
func (h *AccountsHandler) Withdraw(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.accounts.Withdraw(c.UserContext(), principal, c.Params("id"), req.Amount)
	if err != nil {
		return err
	}
	h.metrics.RecordOutcome("withdraw", string(result.Status))

	switch result.Status {
	case domain.WithdrawalStatusApplied:
		return c.JSON(fiber.Map{
			"outcome": result.Status,
			"data":    fiber.Map{"new_balance": result.NewBalance},
		})
	case domain.WithdrawalStatusAccountNotFound:
		return outcomeResponse(c, http.StatusNotFound, string(result.Status))
	case domain.WithdrawalStatusInsufficientFunds, domain.WithdrawalStatusAccountClosed:
		return outcomeResponse(c, http.StatusConflict, string(result.Status))
	default:
		return outcomeResponse(c, http.StatusBadRequest, string(result.Status))
	}
}

// Delete handles DELETE /accounts/:id.
func (h *AccountsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	result, err := h.accounts.DeleteAccount(c.UserContext(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	h.metrics.RecordOutcome("delete_account", string(result.Status))

	switch result.Status {
	case domain.DeletionStatusDeleted:
		return c.JSON(fiber.Map{
			"outcome": result.Status,
			"data":    fiber.Map{"account_id": result.AccountID},
		})
	case domain.DeletionStatusNotFound:
		return outcomeResponse(c, http.StatusNotFound, string(result.Status))
	default:
		return outcomeResponse(c, http.StatusConflict, string(result.Status))
	}
}

// Transactions handles GET /accounts/:id/transactions.
func (h *AccountsHandler) Transactions(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	accountID := c.Params("id")
	// ownership check runs through the account lookup
	if _, err := h.accounts.GetAccount(c.UserContext(), principal, accountID); err != nil {
		return err
	}

	txs, err := h.audit.ListTransactions(c.UserContext(), accountID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	responses := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, dto.NewTransactionResponse(tx))
	}
	return c.JSON(fiber.Map{"data": responses})
}

func outcomeResponse(c *fiber.Ctx, status int, outcome string) error {
	return c.Status(status).JSON(fiber.Map{"outcome": outcome})
}
