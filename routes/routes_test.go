package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	orderControllers "github.com/tdat0411/laptopshop-api/controllers/order"
	"github.com/tdat0411/laptopshop-api/models"
	cartservice "github.com/tdat0411/laptopshop-api/services/cart"
	productservice "github.com/tdat0411/laptopshop-api/services/product"
	userservice "github.com/tdat0411/laptopshop-api/services/user"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{},
		&models.Cart{}, &models.CartDetail{},
		&models.Order{}, &models.OrderDetail{},
	))

	r := gin.New()
	SetupRoutes(r, Deps{
		DB:       db,
		Carts:    cartservice.NewService(db, nil),
		Products: productservice.NewService(db),
		Users:    userservice.NewService(db),
		Hub:      orderControllers.NewHub(),
	})
	return r, db
}

func bearerFor(t *testing.T, user models.User) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return "Bearer " + signed
}

// The documented paths must resolve directly, not via a trailing-slash
// redirect.
func TestCartPathsResolveWithoutRedirect(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, db := setupRouter(t)

	user := models.User{Email: "an@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/cart", nil)
	req.Header.Set("Authorization", bearerFor(t, user))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sum":0`)
}

func TestProfilePathResolvesWithoutRedirect(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, db := setupRouter(t)

	user := models.User{Email: "an@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", bearerFor(t, user))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "an@example.com")
}
