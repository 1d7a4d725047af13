package dto

import "github.com/alimikegami/e-commerce/internal/domain"

func ProductToDomain(p Product) domain.Product {
	return domain.Product{
		ProductID: p.ProductID,
		Name:      p.Name,
		Weight:    p.Weight,
	}
}

func ProductFromDomain(p domain.Product, serviceAddress string) Product {
	return Product{
		ProductID:      p.ProductID,
		Name:           p.Name,
		Weight:         p.Weight,
		ServiceAddress: serviceAddress,
	}
}

// RecommendationToDomain maps the API field rate to the stored rating.
func RecommendationToDomain(r Recommendation) domain.Recommendation {
	return domain.Recommendation{
		ProductID:        r.ProductID,
		RecommendationID: r.RecommendationID,
		Author:           r.Author,
		Rating:           r.Rate,
		Content:          r.Content,
	}
}

func RecommendationFromDomain(r domain.Recommendation, serviceAddress string) Recommendation {
	return Recommendation{
		ProductID:        r.ProductID,
		RecommendationID: r.RecommendationID,
		Author:           r.Author,
		Rate:             r.Rating,
		Content:          r.Content,
		ServiceAddress:   serviceAddress,
	}
}

func RecommendationsFromDomain(data []domain.Recommendation, serviceAddress string) []Recommendation {
	recommendations := make([]Recommendation, 0, len(data))
	for _, r := range data {
		recommendations = append(recommendations, RecommendationFromDomain(r, serviceAddress))
	}
	return recommendations
}

func ReviewToDomain(r Review) domain.Review {
	return domain.Review{
		ProductID: r.ProductID,
		ReviewID:  r.ReviewID,
		Author:    r.Author,
		Subject:   r.Subject,
		Content:   r.Content,
	}
}

func ReviewFromDomain(r domain.Review, serviceAddress string) Review {
	return Review{
		ProductID:      r.ProductID,
		ReviewID:       r.ReviewID,
		Author:         r.Author,
		Subject:        r.Subject,
		Content:        r.Content,
		ServiceAddress: serviceAddress,
	}
}

func ReviewsFromDomain(data []domain.Review, serviceAddress string) []Review {
	reviews := make([]Review, 0, len(data))
	for _, r := range data {
		reviews = append(reviews, ReviewFromDomain(r, serviceAddress))
	}
	return reviews
}

func RecommendationSummaryFromRecommendation(r Recommendation) RecommendationSummary {
	return RecommendationSummary{
		RecommendationID: r.RecommendationID,
		Author:           r.Author,
		Rate:             r.Rate,
		Content:          r.Content,
	}
}

// RecommendationFromSummary attaches the summary to productID, the owning aggregate.
func RecommendationFromSummary(productID int, s RecommendationSummary) Recommendation {
	return Recommendation{
		ProductID:        productID,
		RecommendationID: s.RecommendationID,
		Author:           s.Author,
		Rate:             s.Rate,
		Content:          s.Content,
	}
}

func ReviewSummaryFromReview(r Review) ReviewSummary {
	return ReviewSummary{
		ReviewID: r.ReviewID,
		Author:   r.Author,
		Subject:  r.Subject,
		Content:  r.Content,
	}
}

func ReviewFromSummary(productID int, s ReviewSummary) Review {
	return Review{
		ProductID: productID,
		ReviewID:  s.ReviewID,
		Author:    s.Author,
		Subject:   s.Subject,
		Content:   s.Content,
	}
}
