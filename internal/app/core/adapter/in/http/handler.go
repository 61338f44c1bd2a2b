package http

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/metrics"
)

// Handler REST API 的處理器，與 gRPC 共用同一個 CoreUseCase
type Handler struct {
	core      *usecase.CoreUseCase
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewHandler(core *usecase.CoreUseCase, m *metrics.Metrics) *Handler {
	validate := validator.New()
	// 錯誤訊息使用 JSON 欄位名稱
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if m == nil {
		m = metrics.New()
	}
	return &Handler{
		core:      core,
		validator: validate,
		metrics:   m,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.core.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   toStatsResponse(stats),
	})
}

// Metrics Prometheus 指標
func (h *Handler) Metrics(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

func (h *Handler) CreateAccount(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.respondBadRequest(c, err.Error())
		return
	}

	account, err := h.core.CreateAccount(c.Request.Context(), req.AccountNo, req.Name, string(req.InitialBalance))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"account": toAccountResponse(account),
	})
}

func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.core.ListAccounts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"accounts": out,
	})
}

func (h *Handler) GetAccount(c *gin.Context) {
	account, err := h.core.GetAccount(c.Request.Context(), c.Param("accountNo"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"account": toAccountResponse(account),
	})
}

func (h *Handler) GetBalance(c *gin.Context) {
	accountNo := c.Param("accountNo")
	balance, err := h.core.GetBalance(c.Request.Context(), accountNo)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"account_no": accountNo,
		"balance":    balance.StringFixed(domain.CurrencyScale),
	})
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.respondBadRequest(c, err.Error())
		return
	}

	account, err := h.core.UpdateHolderName(c.Request.Context(), c.Param("accountNo"), req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account updated successfully",
		"account": toAccountResponse(account),
	})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.core.DeleteAccount(c.Request.Context(), c.Param("accountNo")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account deleted successfully",
	})
}

func (h *Handler) Deposit(c *gin.Context) {
	h.movement(c, "Deposited", h.core.Deposit)
}

func (h *Handler) Withdraw(c *gin.Context) {
	h.movement(c, "Withdrew", h.core.Withdraw)
}

// movement 存提款共用流程
func (h *Handler) movement(c *gin.Context, verb string, apply func(ctx context.Context, number, amount string) (decimal.Decimal, error)) {
	accountNo := c.Param("accountNo")

	var req movementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.respondBadRequest(c, err.Error())
		return
	}

	balance, err := apply(c.Request.Context(), accountNo, string(req.Amount))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    fmt.Sprintf("%s %s successfully", verb, string(req.Amount)),
		"account_no": accountNo,
		"balance":    balance.StringFixed(domain.CurrencyScale),
	})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	accountNo := c.Param("accountNo")
	views, err := h.core.ListTransactions(c.Request.Context(), accountNo)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"account_no":   accountNo,
		"transactions": toTransactionResponses(views),
	})
}
