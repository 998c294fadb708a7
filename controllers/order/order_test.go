package orderControllers

import (
	"bytes"
	"context"
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

func setupCheckout(t *testing.T) (*gin.Engine, *gorm.DB, models.User) {
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
	r.Use(func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
	})
	r.POST("/user/checkout", CheckoutHandler(svc, NewHub(), nil))
	r.GET("/user/orders", GetUserOrdersHandler(db))

	return r, db, user
}

func TestCheckoutEndpoint(t *testing.T) {
	r, db, user := setupCheckout(t)

	product := models.Product{Name: "Laptop Dell G15", Price: 15_500_000}
	require.NoError(t, db.Create(&product).Error)

	svc := cartservice.NewService(db, nil)
	_, err := svc.AddProductToCart(context.Background(), user.Email, product.ID, 2)
	require.NoError(t, err)

	body, _ := json.Marshal(gin.H{
		"receiver_name":    "Nguyen Van A",
		"receiver_address": "Ha Noi",
		"receiver_phone":   "0901234567",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order_ref")

	var orders []models.Order
	require.NoError(t, db.Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	assert.Equal(t, 15_500_000.0, orders[0].TotalPrice)
}

func TestCheckoutWithoutCart(t *testing.T) {
	r, _, _ := setupCheckout(t)

	body, _ := json.Marshal(gin.H{
		"receiver_name":    "A",
		"receiver_address": "B",
		"receiver_phone":   "C",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	r, db, user := setupCheckout(t)
	r.PUT("/admin/orders/:orderID/status", UpdateOrderStatusHandler(db))

	order := models.Order{UserID: user.ID, OrderRef: "20250101000000-x", Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)

	body, _ := json.Marshal(gin.H{"status": "CONFIRMED"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/admin/orders/%d/status", order.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusConfirmed, got.Status)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	r, db, _ := setupCheckout(t)
	r.PUT("/admin/orders/:orderID/status", UpdateOrderStatusHandler(db))

	body, _ := json.Marshal(gin.H{"status": "CONFIRMED"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/999/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("shipping")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipping, status)

	_, err = mapOrderStatus("teleported")
	assert.Error(t, err)
}
