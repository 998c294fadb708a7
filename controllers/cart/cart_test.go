package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tdat0411/laptopshop-api/models"
	cartservice "github.com/tdat0411/laptopshop-api/services/cart"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{},
		&models.Cart{}, &models.CartDetail{},
		&models.Order{}, &models.OrderDetail{},
	))

	user := models.User{Email: "an@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	svc := cartservice.NewService(db, nil)

	r := gin.New()
	// Stand-in for the JWT middleware
	r.Use(func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
	})
	r.GET("/user/cart", GetUserCart(svc))
	r.POST("/user/cart", AddToCart(svc))
	r.PUT("/user/cart", UpdateCartQuantities(svc))
	r.DELETE("/user/cart/:detail_id", RemoveCartDetail(svc))

	return r, db, user
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartEndpoint(t *testing.T) {
	r, db, _ := setupRouter(t)

	product := models.Product{Name: "Laptop Dell G15", Price: 15_500_000}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": product.ID, "quantity": 2})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sum": 1}`, w.Body.String())

	// Unknown product is a client error, not a silent no-op
	w = doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": 999, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCartBeforeFirstAdd(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/user/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sum":0`)
}

func TestRemoveCartDetailIsIdempotentOverHTTP(t *testing.T) {
	r, db, _ := setupRouter(t)

	product := models.Product{Name: "Laptop Dell G15", Price: 15_500_000}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.CartDetail
	require.NoError(t, db.First(&detail).Error)

	path := fmt.Sprintf("/user/cart/%d", detail.ID)
	w = doJSON(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Same id again: still 200, nothing to do
	w = doJSON(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateQuantitiesEndpoint(t *testing.T) {
	r, db, _ := setupRouter(t)

	product := models.Product{Name: "Laptop Dell G15", Price: 15_500_000}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.CartDetail
	require.NoError(t, db.First(&detail).Error)

	w = doJSON(r, http.MethodPut, "/user/cart", []gin.H{{"id": detail.ID, "quantity": 4}})
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&detail, detail.ID).Error)
	assert.Equal(t, int64(4), detail.Quantity)
}
