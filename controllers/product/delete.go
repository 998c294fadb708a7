package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	productservice "github.com/tdat0411/laptopshop-api/services/product"
)

// DELETE /admin/products/:id
func DeleteProduct(products *productservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		if err := products.Delete(c.Request.Context(), uint(id)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
