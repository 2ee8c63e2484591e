package httpdto

// PostRequest is the body for creating, replacing or patching a text post.
// Both fields are optional; PATCH ignores empty ones.
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
