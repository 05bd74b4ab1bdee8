package handlers

import (
	"net/http"

	dom "chirper/internal/domain"
	"chirper/internal/dto"
	"chirper/internal/result"
	"chirper/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles registration and login.
type AccountHandler struct {
	svc *service.AccountService
}

// NewAccountHandler returns a new AccountHandler.
func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Register godoc
// @Summary      Register a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AccountRequest  true  "Credentials"
// @Success      200   {object}  dto.AccountResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.svc.CreateAccount(c.Request.Context(), &dom.Account{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	switch {
	case res.IsSuccess():
		c.JSON(http.StatusOK, accountToResponse(*res.Payload()))
	case res.Type() == result.Duplicate:
		c.JSON(http.StatusConflict, gin.H{"errors": res.Messages()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"errors": res.Messages()})
	}
}

// Login godoc
// @Summary      Login
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AccountRequest  true  "Credentials"
// @Success      200   {object}  dto.AccountResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.svc.LoginAccount(c.Request.Context(), &dom.Account{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if !res.IsSuccess() {
		// Every non-success login outcome maps to 401, whatever the cause.
		c.JSON(http.StatusUnauthorized, gin.H{"errors": res.Messages()})
		return
	}
	c.JSON(http.StatusOK, accountToResponse(*res.Payload()))
}

func accountToResponse(a dom.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:       a.ID,
		Username: a.Username,
		Password: a.Password,
	}
}
