package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/tdat0411/laptopshop-api/controllers/order"
	"github.com/tdat0411/laptopshop-api/events"
	cartservice "github.com/tdat0411/laptopshop-api/services/cart"
	productservice "github.com/tdat0411/laptopshop-api/services/product"
	userservice "github.com/tdat0411/laptopshop-api/services/user"
)

// Deps bundles everything the route groups hand to their controllers.
type Deps struct {
	DB       *gorm.DB
	Carts    *cartservice.Service
	Products *productservice.Service
	Users    *userservice.Service
	Hub      *orderControllers.Hub
	Events   *events.Publisher
}

// SetupRoutes is the single entry-point that wires up Auth, User, and Admin
// route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public Auth + catalog routes (no middleware)
	SetupAuthRoutes(r, d)

	// User routes (JWT-protected)
	SetupUserRoutes(r, d)

	// Admin routes (API-Key-protected)
	SetupAdminRoutes(r, d)
}
