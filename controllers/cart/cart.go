package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tdat0411/laptopshop-api/models"
	cartservice "github.com/tdat0411/laptopshop-api/services/cart"
)

type AddToCartInput struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity"`
}

// POST /user/cart
func AddToCart(carts *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailVal, exists := c.Get("email")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		email := emailVal.(string)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sum, err := carts.AddProductToCart(c.Request.Context(), email, input.ProductID, input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, cartservice.ErrUserNotFound):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			case errors.Is(err, cartservice.ErrProductNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"sum": sum})
	}
}

// DELETE /user/cart/:detail_id
//
// Idempotent: removing an already-removed line answers 200.
func RemoveCartDetail(carts *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detailID, err := strconv.ParseUint(c.Param("detail_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid detail_id"})
			return
		}

		sum, err := carts.RemoveCartDetail(c.Request.Context(), uint(detailID))
		if err != nil {
			if errors.Is(err, cartservice.ErrCartDetailNotFound) {
				c.JSON(http.StatusOK, gin.H{"message": "Cart item already removed"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted", "sum": sum})
	}
}

// PUT /user/cart
func UpdateCartQuantities(carts *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input []cartservice.CartDetailUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := carts.UpdateCartQuantities(c.Request.Context(), input); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// GET /user/cart
func GetUserCart(carts *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		cart, err := carts.GetCartByUser(c.Request.Context(), userIDVal.(uint))
		if err != nil {
			if errors.Is(err, cartservice.ErrCartNotFound) {
				// No cart yet: an empty cart is never persisted
				c.JSON(http.StatusOK, gin.H{"sum": 0, "details": []models.CartDetail{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// GET /user/cart/sum
func GetCartSum(carts *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		sum, err := carts.CartSum(c.Request.Context(), userIDVal.(uint))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart sum"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"sum": sum})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(carts *cartservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}

		cart, err := carts.GetCartByUser(c.Request.Context(), uint(userID))
		if err != nil {
			if errors.Is(err, cartservice.ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}
