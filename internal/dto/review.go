package dto

type Review struct {
	ProductID      int    `json:"productId"`
	ReviewID       int    `json:"reviewId"`
	Author         string `json:"author"`
	Subject        string `json:"subject"`
	Content        string `json:"content"`
	ServiceAddress string `json:"serviceAddress,omitempty"`
}
