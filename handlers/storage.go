package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"whattoday/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles activity image uploads. Banner and sub-image
// uploads are separate endpoints: one accepts exactly one file, the
// other a bounded list.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// maxSubImages bounds one sub-image upload batch.
const maxSubImages = 4

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadBannerImageHandler uploads a single banner image and returns its URL.
func (h *StorageHandler) UploadBannerImageHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image not provided", "detail": err.Error()})
		return
	}

	url, err := h.uploadOne(c, fileHeader.Filename, func(path string) error {
		return c.SaveUploadedFile(fileHeader, path)
	}, "activities/banners")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imageUrl": url})
}

// UploadSubImagesHandler uploads up to maxSubImages images and returns
// their URLs in upload order.
func (h *StorageHandler) UploadSubImagesHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "images not provided", "detail": err.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "images not provided"})
		return
	}
	if len(files) > maxSubImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many images", "detail": "at most 4 sub-images per upload"})
		return
	}

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		fh := fileHeader
		url, err := h.uploadOne(c, fh.Filename, func(path string) error {
			return c.SaveUploadedFile(fh, path)
		}, "activities/sub-images")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image", "detail": err.Error()})
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusCreated, gin.H{"imageUrls": urls})
}

// uploadOne stages the file in a temp path, pushes it to storage, and
// cleans up.
func (h *StorageHandler) uploadOne(c *gin.Context, filename string, save func(string) error, folder string) (string, error) {
	tempFilePath := filepath.Join(os.TempDir(), filename)
	if err := save(tempFilePath); err != nil {
		return "", err
	}
	defer os.Remove(tempFilePath)

	return h.StorageSvc.UploadImage(c, tempFilePath, folder)
}
