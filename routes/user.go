package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/tdat0411/laptopshop-api/controllers/cart"
	orderControllers "github.com/tdat0411/laptopshop-api/controllers/order"
	userControllers "github.com/tdat0411/laptopshop-api/controllers/user"
	"github.com/tdat0411/laptopshop-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("", userControllers.GetUser(d.DB)) // GET /user

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(d.Carts))                    // GET /user/cart
			cartGroup.GET("/sum", cartControllers.GetCartSum(d.Carts))                 // GET /user/cart/sum
			cartGroup.POST("", cartControllers.AddToCart(d.Carts))                     // POST /user/cart
			cartGroup.PUT("", cartControllers.UpdateCartQuantities(d.Carts))           // PUT /user/cart
			cartGroup.DELETE("/:detail_id", cartControllers.RemoveCartDetail(d.Carts)) // DELETE /user/cart/:detail_id
		}

		// ──────────────── Checkout + Order History ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(d.Carts, d.Hub, d.Events)) // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(d.DB))                   // GET /user/orders
	}
}
