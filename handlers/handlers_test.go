package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/invoice-dashboard/config"
	"github.com/yourusername/invoice-dashboard/data"
	"github.com/yourusername/invoice-dashboard/middleware"
	"github.com/yourusername/invoice-dashboard/models"
	"github.com/yourusername/invoice-dashboard/store/file"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  time.Hour,
	}
}

func setupRouter(t *testing.T, dataDir string) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, _ := test.NewNullLogger()
	cfg := testConfig()
	svc := data.NewService(file.NewFileStore(dataDir), log)
	return NewRouter(svc, cfg, log), cfg
}

func authorized(t *testing.T, cfg *config.Config, method, path string) *http.Request {
	t.Helper()
	token, err := middleware.GenerateToken("410544b2-4001-4271-9855-fec4b6a6442a", "user@nextmail.com", cfg.JWTSecret, time.Minute)
	require.NoError(t, err)
	req, _ := http.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	router, cfg := setupRouter(t, "../fixtures")

	post := func(body string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		return serve(router, req)
	}

	t.Run("Valid Credentials", func(t *testing.T) {
		w := post(`{"email":"user@nextmail.com","password":"123456"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "user@nextmail.com", resp.User.Email)
		assert.NotContains(t, w.Body.String(), "123456")

		claims, err := middleware.ParseToken(resp.AccessToken, cfg.JWTSecret)
		require.NoError(t, err)
		assert.Equal(t, "user@nextmail.com", claims.Email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		w := post(`{"email":"user@nextmail.com","password":"wrong-password"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unknown User", func(t *testing.T) {
		w := post(`{"email":"missing@example.com","password":"123456"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		w := post(`{"email":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRefresh(t *testing.T) {
	router, cfg := setupRouter(t, "../fixtures")

	refresh := func(token string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(RefreshTokenRequest{RefreshToken: token})
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/refresh", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		return serve(router, req)
	}

	valid, _ := middleware.GenerateToken("u1", "user@nextmail.com", cfg.JWTRefreshSecret, time.Hour)
	w := refresh(valid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")

	// access tokens are signed with a different secret
	access, _ := middleware.GenerateToken("u1", "user@nextmail.com", cfg.JWTSecret, time.Hour)
	assert.Equal(t, http.StatusUnauthorized, refresh(access).Code)

	gone, _ := middleware.GenerateToken("u9", "gone@nextmail.com", cfg.JWTRefreshSecret, time.Hour)
	w = refresh(gone)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestDashboardRequiresToken(t *testing.T) {
	router, _ := setupRouter(t, "../fixtures")

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard/cards", nil)
	assert.Equal(t, http.StatusUnauthorized, serve(router, req).Code)
}

func TestDashboardEndpoints(t *testing.T) {
	router, cfg := setupRouter(t, "../fixtures")

	t.Run("Cards", func(t *testing.T) {
		w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/cards"))
		require.Equal(t, http.StatusOK, w.Code)

		var cards models.CardData
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
		assert.Equal(t, models.CardData{
			NumberOfCustomers:    6,
			NumberOfInvoices:     15,
			TotalPaidInvoices:    "$1,185.16",
			TotalPendingInvoices: "$1,256.32",
		}, cards)
	})

	t.Run("Revenue", func(t *testing.T) {
		w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/revenue"))
		require.Equal(t, http.StatusOK, w.Code)

		var revenue []models.Revenue
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &revenue))
		require.Len(t, revenue, 12)
		assert.Equal(t, "Jan", revenue[0].Month)
	})

	t.Run("Latest Invoices", func(t *testing.T) {
		w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/invoices/latest"))
		require.Equal(t, http.StatusOK, w.Code)

		var latest []models.LatestInvoice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &latest))
		require.Len(t, latest, 5)
		assert.Equal(t, "$89.45", latest[0].Amount)
		assert.Equal(t, "Delba de Oliveira", latest[0].Name)
	})

	t.Run("Invoice Search", func(t *testing.T) {
		w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/invoices?query=Lee&page=1"))
		require.Equal(t, http.StatusOK, w.Code)

		var rows []InvoiceRow
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "Lee Robinson", rows[0].Name)
		assert.Equal(t, "$5.00", rows[0].FormattedAmount)
		assert.Equal(t, "Aug 19, 2023", rows[0].FormattedDate)
	})

	t.Run("Invoice Pages", func(t *testing.T) {
		w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/invoices/pages?page=2"))
		require.Equal(t, http.StatusOK, w.Code)

		var resp InvoicesPagesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.TotalPages)
		assert.Equal(t, []string{"1", "2", "3"}, resp.Pages)
	})

	t.Run("Invalid Page", func(t *testing.T) {
		w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/invoices?page=two"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invoice By ID", func(t *testing.T) {
		w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/invoices/c1a0e8b2-0000-4c1e-9f6a-0d2b7e5a0000"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"amount":"157.95"`)
		assert.Contains(t, w.Body.String(), `"index":11`)
	})

	t.Run("Invoice Not Found", func(t *testing.T) {
		w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/invoices/nope"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Customers", func(t *testing.T) {
		w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/customers?query=robinson"))
		require.Equal(t, http.StatusOK, w.Code)

		var customers []models.CustomersTable
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customers))
		require.Len(t, customers, 1)
		assert.Equal(t, int64(2), customers[0].TotalInvoices)
		assert.Equal(t, "$203.48", customers[0].TotalPending)
		assert.Equal(t, "$5.00", customers[0].TotalPaid)
	})

	t.Run("Customer Fields", func(t *testing.T) {
		w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/customers/fields"))
		require.Equal(t, http.StatusOK, w.Code)

		var fields []models.CustomerField
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
		require.Len(t, fields, 6)
		assert.Equal(t, "Delba de Oliveira", fields[0].Name)
	})
}

func TestDataAccessFailure(t *testing.T) {
	router, cfg := setupRouter(t, t.TempDir())

	w := serve(router, authorized(t, cfg, http.MethodGet, "/api/v1/dashboard/cards"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch card data."}`, w.Body.String())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewBufferString(`{"email":"user@nextmail.com","password":"123456"}`))
	w = serve(router, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch user."}`, w.Body.String())
}
