package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tdat0411/laptopshop-api/models"
	productservice "github.com/tdat0411/laptopshop-api/services/product"
)

// CreateProduct creates a new product with image upload.
// POST /admin/products (multipart)
func CreateProduct(products *productservice.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var quantity int64
		if quantityStr := c.PostForm("quantity"); quantityStr != "" {
			if quantity, err = strconv.ParseInt(quantityStr, 10, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
		}

		// Image upload
		imageURL, err := saveUpload(c, "image", "products")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Name:       name,
			Price:      price,
			Image:      imageURL,
			DetailDesc: c.PostForm("detail_desc"),
			ShortDesc:  c.PostForm("short_desc"),
			Quantity:   quantity,
			Factory:    c.PostForm("factory"),
			Target:     c.PostForm("target"),
		}

		if err := products.Create(c.Request.Context(), &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// saveUpload stores a multipart file under UPLOAD_DIR/<subdir> and returns
// its public URL.
func saveUpload(c *gin.Context, field, subdir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("%s is required", field)
	}
	filename := strings.ReplaceAll(file.Filename, " ", "_")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	saveDir := filepath.Join(uploadDir, subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %v", err)
	}

	savePath := filepath.Join(saveDir, filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("failed to save %s: %v", field, err)
	}

	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}
