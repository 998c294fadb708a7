package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tdat0411/laptopshop-api/auth"
	productControllers "github.com/tdat0411/laptopshop-api/controllers/product"
)

// SetupAuthRoutes registers the public endpoints: login, register and the
// browsable catalog.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(d.Users))
		authGroup.POST("/register", auth.RegisterHandler(d.Users))
	}

	r.GET("/products", productControllers.GetProducts(d.Products))
	r.GET("/products/:id", productControllers.GetProductByID(d.Products))
}
