package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	productservice "github.com/tdat0411/laptopshop-api/services/product"
)

// GET /products
//
// Filter params mirror the shop page URL: factory, target and price are
// comma-separated lists; price holds bucket labels like "duoi-10trieu".
func GetProducts(products *productservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := productservice.Criteria{
			Factory: splitParam(c.Query("factory")),
			Target:  splitParam(c.Query("target")),
			Price:   splitParam(c.Query("price")),
		}

		if pageStr := c.DefaultQuery("page", "1"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
				return
			}
			criteria.Page = page
		}
		if sizeStr := c.DefaultQuery("size", ""); sizeStr != "" {
			size, err := strconv.Atoi(sizeStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size"})
				return
			}
			criteria.Size = size
		}

		items, total, err := products.List(c.Request.Context(), criteria)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": items,
			"total":    total,
			"page":     criteria.Page,
		})
	}
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
