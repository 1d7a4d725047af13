package dto

type Product struct {
	ProductID      int    `json:"productId"`
	Name           string `json:"name"`
	Weight         int    `json:"weight"`
	ServiceAddress string `json:"serviceAddress,omitempty"`
}
