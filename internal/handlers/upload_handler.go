package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadKinds maps the URL segment to the storage prefix.
var uploadKinds = map[string]string{
	"cv":     "cvs",
	"avatar": "avatars",
	"logo":   "logos",
}

type UploadHandler struct {
	BaseHandler
	store    storage.Storage
	cfg      *config.Config
	userRepo repositories.UserRepository
}

func NewUploadHandler(base BaseHandler, store storage.Storage, cfg *config.Config, userRepo repositories.UserRepository) *UploadHandler {
	return &UploadHandler{BaseHandler: base, store: store, cfg: cfg, userRepo: userRepo}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	uploads := rg.Group("/uploads", middleware.AuthMiddleware(h.userRepo))
	{
		uploads.POST("/:kind", h.Upload)
	}
}

// Upload accepts either a multipart "file" part or a form "url" value, never
// both. A raw URL is returned unchanged for clients that host files
// elsewhere.
func (h *UploadHandler) Upload(c *gin.Context) {
	prefix, ok := uploadKinds[c.Param("kind")]
	if !ok {
		h.Error(c, errBadUploadKind)
		return
	}

	rawURL := c.PostForm("url")
	file, err := c.FormFile("file")
	hasFile := err == nil

	if hasFile && rawURL != "" {
		h.Error(c, errFileAndURL)
		return
	}
	if !hasFile && rawURL == "" {
		h.Error(c, errNoFileOrURL)
		return
	}

	if rawURL != "" {
		if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
			h.Error(c, errBadURL)
			return
		}
		h.OK(c, gin.H{"url": rawURL})
		return
	}

	if file.Size > h.cfg.Upload.MaxSize {
		h.Error(c, errFileTooLarge(h.cfg.Upload.MaxSize))
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !h.allowedType(contentType) {
		h.Error(c, errBadFileType)
		return
	}

	src, err := file.Open()
	if err != nil {
		h.Error(c, err)
		return
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s/%d%s",
		prefix, uuid.NewString(), time.Now().Unix(), filepath.Ext(file.Filename))

	url, err := h.store.Save(key, src, file.Size, contentType)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, gin.H{"url": url})
}

func (h *UploadHandler) allowedType(contentType string) bool {
	for _, t := range h.cfg.Upload.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
