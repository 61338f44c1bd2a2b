package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JoeShih716/go-mem-bank/pkg/ratelimit"
)

// NewRouter 組裝中介層與路由
func NewRouter(h *Handler, limiter *ratelimit.Limiter) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(), Logger(), CORS(), Metrics(h.metrics))
	if limiter != nil {
		r.Use(RateLimit(limiter))
	}

	r.GET("/health", h.Health)
	r.GET("/metrics", h.Metrics)

	api := r.Group("/api/v1")
	{
		api.GET("/stats", h.Stats)

		api.POST("/accounts", h.CreateAccount)
		api.GET("/accounts", h.ListAccounts)
		api.GET("/accounts/:accountNo", h.GetAccount)
		api.GET("/accounts/:accountNo/balance", h.GetBalance)
		api.PATCH("/accounts/:accountNo", h.UpdateAccount)
		api.DELETE("/accounts/:accountNo", h.DeleteAccount)
		api.POST("/accounts/:accountNo/deposit", h.Deposit)
		api.POST("/accounts/:accountNo/withdraw", h.Withdraw)
		api.GET("/accounts/:accountNo/transactions", h.ListTransactions)
	}
	return r
}

// NewServer 包成 http.Server 以便 Shutdown
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
