package response_models

type PointResponse struct {
	ID        uint    `json:"id"`
	Image     string  `json:"image"`
	ImageURL  string  `json:"image_url"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	UF        string  `json:"uf"`
}

type PointDetailResponse struct {
	Point PointResponse `json:"point"`
	Items []ItemTitle   `json:"items"`
}
