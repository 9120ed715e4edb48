package response_models

type ItemResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

type ItemTitle struct {
	Title string `json:"title"`
}
