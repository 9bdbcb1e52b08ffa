package dto

import (
	"time"

	"kushfilms/internal/microservices/http-api/models"
)

// RecordWatchRequest: payload for POST /api/watch-history
type RecordWatchRequest struct {
	MovieID   string `json:"movieId" binding:"required,uuid"`
	Progress  int    `json:"progress" binding:"min=0"`
	Completed bool   `json:"completed"`
}

type WatchHistoryEntry struct {
	ID        string        `json:"id"`
	MovieID   string        `json:"movieId"`
	Progress  int           `json:"progress"`
	Completed bool          `json:"completed"`
	WatchedAt time.Time     `json:"watchedAt"`
	Movie     *models.Movie `json:"movie,omitempty"`
}

func FromModelToWatchHistoryEntry(entry *models.WatchHistory) WatchHistoryEntry {
	return WatchHistoryEntry{
		ID:        entry.ID,
		MovieID:   entry.MovieID,
		Progress:  entry.Progress,
		Completed: entry.Completed,
		WatchedAt: entry.WatchedAt,
		Movie:     entry.Movie,
	}
}

func FromModelsToWatchHistory(entries []models.WatchHistory) []WatchHistoryEntry {
	out := make([]WatchHistoryEntry, 0, len(entries))
	for i := range entries {
		out = append(out, FromModelToWatchHistoryEntry(&entries[i]))
	}
	return out
}
