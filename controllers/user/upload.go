package userControllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// saveAvatar stores the uploaded avatar under UPLOAD_DIR/avatar and returns
// its public URL.
func saveAvatar(c *gin.Context) (string, error) {
	file, err := c.FormFile("avatar")
	if err != nil {
		return "", fmt.Errorf("avatar is required")
	}
	filename := strings.ReplaceAll(file.Filename, " ", "_")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	saveDir := filepath.Join(uploadDir, "avatar")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %v", err)
	}

	savePath := filepath.Join(saveDir, filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("failed to save avatar: %v", err)
	}

	return "/uploads/avatar/" + filename, nil
}
