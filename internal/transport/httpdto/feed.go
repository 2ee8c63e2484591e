package httpdto

import "pixelpost/internal/services"

type FeedResponse struct {
	Posts []services.DecoratedPost `json:"posts"`
	Count int                      `json:"count"`
}
