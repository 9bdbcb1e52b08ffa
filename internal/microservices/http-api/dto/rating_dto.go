package dto

import "kushfilms/internal/microservices/http-api/models"

// SubmitRatingRequest: payload for POST /api/ratings
type SubmitRatingRequest struct {
	TargetRef
	Rating int `json:"rating" binding:"required,min=1,max=10"`
}

// RatingResponse carries the saved rating and the target's refreshed aggregate.
type RatingResponse struct {
	Rating        *models.Rating `json:"rating"`
	AverageRating float64        `json:"averageRating"`
	RatingCount   int            `json:"ratingCount"`
}

func NewRatingResponse(rating *models.Rating, stats models.RatingStats) RatingResponse {
	return RatingResponse{Rating: rating, AverageRating: stats.Average, RatingCount: stats.Count}
}
