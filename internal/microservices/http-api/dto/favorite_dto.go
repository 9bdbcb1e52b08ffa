package dto

// AddFavoriteRequest: payload for POST /api/favorites
type AddFavoriteRequest struct {
	TargetRef
}
