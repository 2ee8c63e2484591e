package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pixelpost/internal/services"
	"pixelpost/internal/transport/httpdto"
)

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Create handles the multipart upload. The file part is required; title
// and content are optional form fields.
func (h *UploadHandler) Create(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("could not read file"))
		return
	}
	defer file.Close()

	p, err := h.service.Upload(c.Request.Context(), services.UploadInput{
		UserID:      userID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Title:       c.PostForm("title"),
		Content:     c.PostForm("content"),
		Body:        file,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete removes a media post owned by the caller.
func (h *UploadHandler) Delete(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid post id"))
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id, userID); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.DetailResponse{Detail: "Post deleted successfully"})
}
