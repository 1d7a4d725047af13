package dto

// ProductAggregate is assembled on every read and never persisted.
type ProductAggregate struct {
	ProductID        int                     `json:"productId"`
	Name             string                  `json:"name"`
	Weight           int                     `json:"weight"`
	Recommendations  []RecommendationSummary `json:"recommendations"`
	Reviews          []ReviewSummary         `json:"reviews"`
	ServiceAddresses ServiceAddresses        `json:"serviceAddresses"`
}

type RecommendationSummary struct {
	RecommendationID int    `json:"recommendationId"`
	Author           string `json:"author"`
	Rate             int    `json:"rate"`
	Content          string `json:"content"`
}

type ReviewSummary struct {
	ReviewID int    `json:"reviewId"`
	Author   string `json:"author"`
	Subject  string `json:"subject"`
	Content  string `json:"content"`
}

type ServiceAddresses struct {
	CompositeAddress      string `json:"compositeAddress"`
	ProductAddress        string `json:"productAddress"`
	ReviewAddress         string `json:"reviewAddress"`
	RecommendationAddress string `json:"recommendationAddress"`
}
