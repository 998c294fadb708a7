package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/tdat0411/laptopshop-api/controllers/cart"
	orderControllers "github.com/tdat0411/laptopshop-api/controllers/order"
	productcontroller "github.com/tdat0411/laptopshop-api/controllers/product"
	userControllers "github.com/tdat0411/laptopshop-api/controllers/user"
	"github.com/tdat0411/laptopshop-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key
// middleware.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", userControllers.GetAllUsers(d.Users))
			userAdmin.POST("", userControllers.CreateUser(d.Users))
			userAdmin.PUT("/:id", userControllers.UpdateUser(d.Users))
			userAdmin.DELETE("/:id", userControllers.DeleteUser(d.Users))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.Products))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.Products))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.Products))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.Products))
		}

		// ─────────── Order Console ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(d.DB))
			orderAdmin.GET("/ws", d.Hub.Handler())
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.DB))
		}

		// ─────────── Cart Inspection ───────────
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(d.Carts))
	}
}
