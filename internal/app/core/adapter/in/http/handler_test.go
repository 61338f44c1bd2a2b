package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/metrics"
	"github.com/JoeShih716/go-mem-bank/pkg/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, limiter *ratelimit.Limiter) http.Handler {
	t.Helper()
	ledger := memory.NewMutexLedger(domain.Policy{MinOpeningBalance: decimal.NewFromInt(100)})
	h := NewHandler(usecase.NewCoreUseCase(ledger), metrics.New())
	return NewRouter(h, limiter)
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: invalid json %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec, out
}

func TestHandlerAccountLifecycle(t *testing.T) {
	r := newTestRouter(t, nil)

	rec, body := doJSON(t, r, http.MethodPost, "/api/v1/accounts",
		`{"account_no":"123456","name":"John Doe","initial_balance":100}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%v", rec.Code, body)
	}
	account := body["account"].(map[string]any)
	if account["balance"] != "100.00" || account["name"] != "John Doe" {
		t.Fatalf("unexpected account %v", account)
	}

	rec, body = doJSON(t, r, http.MethodPost, "/api/v1/accounts/123456/withdraw", `{"amount":"30"}`)
	if rec.Code != http.StatusOK || body["balance"] != "70.00" {
		t.Fatalf("withdraw status=%d body=%v", rec.Code, body)
	}
	rec, body = doJSON(t, r, http.MethodPost, "/api/v1/accounts/123456/deposit", `{"amount":50}`)
	if rec.Code != http.StatusOK || body["balance"] != "120.00" {
		t.Fatalf("deposit status=%d body=%v", rec.Code, body)
	}

	rec, body = doJSON(t, r, http.MethodGet, "/api/v1/accounts/123456/transactions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("transactions status=%d", rec.Code)
	}
	rows := body["transactions"].([]any)
	want := []string{"100.00", "70.00", "120.00"}
	if len(rows) != len(want) {
		t.Fatalf("rows=%d want %d", len(rows), len(want))
	}
	for i, row := range rows {
		m := row.(map[string]any)
		if m["balance"] != want[i] {
			t.Fatalf("row %d balance=%v want %s", i, m["balance"], want[i])
		}
	}
	if rows[0].(map[string]any)["txn_id"] != "TXN0001" {
		t.Fatalf("first txn id=%v", rows[0])
	}

	rec, body = doJSON(t, r, http.MethodPatch, "/api/v1/accounts/123456", `{"name":"Jane Doe"}`)
	if rec.Code != http.StatusOK || body["account"].(map[string]any)["name"] != "Jane Doe" {
		t.Fatalf("rename status=%d body=%v", rec.Code, body)
	}

	rec, body = doJSON(t, r, http.MethodGet, "/api/v1/stats", "")
	stats := body["stats"].(map[string]any)
	if rec.Code != http.StatusOK || stats["total_accounts"].(float64) != 1 || stats["total_balance"] != "120.00" {
		t.Fatalf("stats status=%d body=%v", rec.Code, body)
	}

	rec, _ = doJSON(t, r, http.MethodDelete, "/api/v1/accounts/123456", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status=%d", rec.Code)
	}
	rec, body = doJSON(t, r, http.MethodGet, "/api/v1/accounts/123456/balance", "")
	if rec.Code != http.StatusNotFound || body["code"] != domain.KindAccountNotFound {
		t.Fatalf("balance after delete status=%d body=%v", rec.Code, body)
	}
}

func TestHandlerErrors(t *testing.T) {
	r := newTestRouter(t, nil)
	if rec, body := doJSON(t, r, http.MethodPost, "/api/v1/accounts",
		`{"account_no":"123456","name":"Jane","initial_balance":"150"}`); rec.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%v", rec.Code, body)
	}

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"duplicate", http.MethodPost, "/api/v1/accounts",
			`{"account_no":"123456","name":"Bob","initial_balance":500}`, http.StatusConflict, domain.KindDuplicateAccount},
		{"bad account number", http.MethodPost, "/api/v1/accounts",
			`{"account_no":"12345","name":"Bob","initial_balance":500}`, http.StatusBadRequest, domain.KindInvalidAccountNumber},
		{"bad name", http.MethodPost, "/api/v1/accounts",
			`{"account_no":"654321","name":"B0b","initial_balance":500}`, http.StatusBadRequest, domain.KindInvalidName},
		{"below minimum", http.MethodPost, "/api/v1/accounts",
			`{"account_no":"654321","name":"Bob","initial_balance":"99.99"}`, http.StatusUnprocessableEntity, domain.KindBelowMinimumBalance},
		{"missing field", http.MethodPost, "/api/v1/accounts",
			`{"account_no":"654321","initial_balance":500}`, http.StatusBadRequest, KindBadRequest},
		{"malformed amount", http.MethodPost, "/api/v1/accounts/123456/deposit",
			`{"amount":true}`, http.StatusBadRequest, KindBadRequest},
		{"zero amount", http.MethodPost, "/api/v1/accounts/123456/deposit",
			`{"amount":0}`, http.StatusBadRequest, domain.KindInvalidAmount},
		{"insufficient funds", http.MethodPost, "/api/v1/accounts/123456/withdraw",
			`{"amount":"150.01"}`, http.StatusUnprocessableEntity, domain.KindInsufficientFunds},
		{"unknown account", http.MethodPost, "/api/v1/accounts/999999/deposit",
			`{"amount":"10"}`, http.StatusNotFound, domain.KindAccountNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doJSON(t, r, tt.method, tt.path, tt.body)
			if rec.Code != tt.wantStatus || body["code"] != tt.wantCode {
				t.Fatalf("status=%d code=%v want %d %s (body %v)", rec.Code, body["code"], tt.wantStatus, tt.wantCode, body)
			}
			if body["success"] != false {
				t.Fatalf("success=%v", body["success"])
			}
		})
	}

	// 失敗的請求不影響餘額
	_, body := doJSON(t, r, http.MethodGet, "/api/v1/accounts/123456/balance", "")
	if body["balance"] != "150.00" {
		t.Fatalf("balance=%v want 150.00", body["balance"])
	}
}

func TestHandlerEmptyTransactions(t *testing.T) {
	r := newTestRouter(t, nil)
	rec, body := doJSON(t, r, http.MethodGet, "/api/v1/accounts/000000/transactions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	rows, ok := body["transactions"].([]any)
	if !ok || len(rows) != 0 {
		t.Fatalf("transactions=%v want []", body["transactions"])
	}
}

func TestHandlerRateLimit(t *testing.T) {
	r := newTestRouter(t, ratelimit.New(2, time.Minute))

	for i := 0; i < 2; i++ {
		if rec, _ := doJSON(t, r, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status=%d", i, rec.Code)
		}
	}
	rec, body := doJSON(t, r, http.MethodGet, "/health", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status=%d body=%v", rec.Code, body)
	}
}

func TestHandlerMetrics(t *testing.T) {
	r := newTestRouter(t, nil)
	doJSON(t, r, http.MethodGet, "/api/v1/accounts/999999", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`bank_http_requests_total{method="GET",route="/api/v1/accounts/:accountNo",status="404"} 1`,
		`bank_ledger_errors_total{kind="` + domain.KindAccountNotFound + `"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics missing %q:\n%s", want, body)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/accounts", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status=%d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS header")
	}
}
