package request_models

// CreatePointRequest carries the scalar fields of the point creation form.
// The image file and the comma-separated items list travel in the same
// multipart body and are handled separately by the controller.
type CreatePointRequest struct {
	Name      string  `form:"name" binding:"required"`
	Email     string  `form:"email" binding:"required,email"`
	Whatsapp  string  `form:"whatsapp" binding:"required"`
	Latitude  float64 `form:"latitude"`
	Longitude float64 `form:"longitude"`
	City      string  `form:"city" binding:"required"`
	UF        string  `form:"uf" binding:"required,len=2"`
	Items     string  `form:"items" binding:"required"`
}
