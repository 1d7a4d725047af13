package dto

type Recommendation struct {
	ProductID        int    `json:"productId"`
	RecommendationID int    `json:"recommendationId"`
	Author           string `json:"author"`
	Rate             int    `json:"rate"`
	Content          string `json:"content"`
	ServiceAddress   string `json:"serviceAddress,omitempty"`
}
