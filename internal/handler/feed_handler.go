package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pixelpost/internal/services"
	"pixelpost/internal/transport/httpdto"
)

type FeedHandler struct {
	service *services.FeedService
}

func NewFeedHandler(service *services.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

func (h *FeedHandler) Get(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized"))
		return
	}

	posts, err := h.service.AssembleFeed(c.Request.Context(), userID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.FeedResponse{
		Posts: posts,
		Count: len(posts),
	})
}
