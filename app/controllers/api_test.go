package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/app/routes"
	"github.com/shashiranjanraj/medicare/pkg/database"
	"github.com/shashiranjanraj/medicare/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newAPI spins up the full route table on an in-memory database.
func newAPI(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Manufacturer{},
		&models.Category{},
		&models.Salt{},
		&models.Product{},
		&models.ProductSalt{},
		&models.Substitute{},
		&models.FAQ{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
	))

	database.DB = db
	t.Cleanup(func() {
		database.DB = nil
		_ = sqlDB.Close()
	})

	r := router.New()
	routes.Register(r)
	return r.Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

// authHeader registers a fresh user and returns a bearer header for it.
func authHeader(t *testing.T, api http.Handler, username string) map[string]string {
	t.Helper()

	rec, _ := doJSON(t, api, http.MethodPost, "/api/register",
		`{"username":"`+username+`","email":"`+username+`@example.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, api, http.MethodPost, "/api/login",
		`{"username":"`+username+`","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	access, _ := body["access_token"].(string)
	require.NotEmpty(t, access)
	return map[string]string{"Authorization": "Bearer " + access}
}

func TestHealthEndpoint(t *testing.T) {
	api := newAPI(t)

	rec, body := doJSON(t, api, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Pharmacy API is running", body["message"])
	assert.NotEmpty(t, body["version"])
}

func TestSearchRequiresQuery(t *testing.T) {
	api := newAPI(t)
	headers := authHeader(t, api, "searcher")

	rec, body := doJSON(t, api, http.MethodGet, "/api/search", "", headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Search query is required", body["error"])
}

func TestProductDetailNotFoundBody(t *testing.T) {
	api := newAPI(t)
	headers := authHeader(t, api, "browser")

	rec, body := doJSON(t, api, http.MethodGet, "/api/product/424242", "", headers)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", body["error"])
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	api := newAPI(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/profile"},
		{http.MethodGet, "/api/orders"},
		{http.MethodPost, "/api/orders"},
		{http.MethodPost, "/api/logout"},
		{http.MethodGet, "/api/products"},
		{http.MethodGet, "/api/product/1"},
		{http.MethodGet, "/api/search"},
		{http.MethodGet, "/api/product/1/reviews"},
	} {
		rec, body := doJSON(t, api, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
		assert.Equal(t, "Authorization token is required", body["error"], route.path)
	}
}

func TestRegisterLoginAndProfileFlow(t *testing.T) {
	api := newAPI(t)

	rec, body := doJSON(t, api, http.MethodPost, "/api/register",
		`{"username":"testuser","email":"test@example.com","password":"password123","first_name":"Test"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User registered successfully", body["message"])

	rec, body = doJSON(t, api, http.MethodPost, "/api/login",
		`{"username":"testuser","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful", body["message"])

	access, _ := body["access_token"].(string)
	refresh, _ := body["refresh_token"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	// Profile with the access token.
	rec, body = doJSON(t, api, http.MethodGet, "/api/profile", "",
		map[string]string{"Authorization": "Bearer " + access})
	require.Equal(t, http.StatusOK, rec.Code)
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "testuser", user["username"])

	// Refresh needs the refresh token, not the access token.
	rec, body = doJSON(t, api, http.MethodPost, "/api/refresh", "",
		map[string]string{"Authorization": "Bearer " + access})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Wrong token type", body["error"])

	rec, body = doJSON(t, api, http.MethodPost, "/api/refresh", "",
		map[string]string{"Authorization": "Bearer " + refresh})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["access_token"])

	rec, body = doJSON(t, api, http.MethodPost, "/api/logout", "",
		map[string]string{"Authorization": "Bearer " + access})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Successfully logged out", body["message"])
}

func TestLoginWrongPasswordBody(t *testing.T) {
	api := newAPI(t)

	rec, _ := doJSON(t, api, http.MethodPost, "/api/register",
		`{"username":"testuser","email":"test@example.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, api, http.MethodPost, "/api/login",
		`{"username":"testuser","password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", body["error"])
}

func TestRegisterValidationBody(t *testing.T) {
	api := newAPI(t)

	rec, body := doJSON(t, api, http.MethodPost, "/api/register",
		`{"username":"ab","email":"not-an-email","password":"123"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", body["error"])

	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "username")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestOrderFlowOverHTTP(t *testing.T) {
	api := newAPI(t)

	_, _ = doJSON(t, api, http.MethodPost, "/api/register",
		`{"username":"buyer","email":"buyer@example.com","password":"password123"}`, nil)
	_, loginBody := doJSON(t, api, http.MethodPost, "/api/login",
		`{"username":"buyer","password":"password123"}`, nil)
	access := loginBody["access_token"].(string)
	authHeader := map[string]string{"Authorization": "Bearer " + access}

	maker := models.Manufacturer{Name: "Cipla Ltd"}
	require.NoError(t, database.DB.Create(&maker).Error)
	product := models.Product{Name: "Crocin 500", SKU: "CRO-500", ManufacturerID: maker.ID, Price: 20.5, IsActive: true}
	require.NoError(t, database.DB.Create(&product).Error)

	rec, body := doJSON(t, api, http.MethodPost, "/api/orders",
		`{"items":[{"product_id":1,"quantity":2}],"shipping_address":"12 MG Road"}`, authHeader)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Order created successfully", body["message"])

	order, ok := body["order"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 41.0, order["total_amount"].(float64), 0.001)

	rec, body = doJSON(t, api, http.MethodGet, "/api/orders", "", authHeader)
	require.Equal(t, http.StatusOK, rec.Code)
	orders, ok := body["orders"].([]interface{})
	require.True(t, ok)
	assert.Len(t, orders, 1)

	// Missing product: exact error body, nothing persisted.
	rec, body = doJSON(t, api, http.MethodPost, "/api/orders",
		`{"items":[{"product_id":9999,"quantity":1}]}`, authHeader)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product 9999 not found", body["error"])
}
