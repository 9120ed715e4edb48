package request_models

// CreateItemRequest carries the scalar part of the admin item form; the
// image file arrives in the same multipart body.
type CreateItemRequest struct {
	Title string `form:"title" binding:"required"`
}
