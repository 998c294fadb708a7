package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tdat0411/laptopshop-api/models"
	productservice "github.com/tdat0411/laptopshop-api/services/product"
)

type UpdateProductInput struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
	Image      string  `json:"image"`
	DetailDesc string  `json:"detail_desc"`
	ShortDesc  string  `json:"short_desc"`
	Quantity   int64   `json:"quantity"`
	Factory    string  `json:"factory"`
	Target     string  `json:"target"`
}

// PUT /admin/products/:id
func UpdateProduct(products *productservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			ID:         uint(id),
			Name:       input.Name,
			Price:      input.Price,
			Image:      input.Image,
			DetailDesc: input.DetailDesc,
			ShortDesc:  input.ShortDesc,
			Quantity:   input.Quantity,
			Factory:    input.Factory,
			Target:     input.Target,
		}

		if err := products.Update(c.Request.Context(), &product); err != nil {
			if errors.Is(err, productservice.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}
