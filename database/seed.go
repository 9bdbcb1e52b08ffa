package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/middleware/auth"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedResult counts the rows Seed inserted; rows that already existed are not counted.
type SeedResult struct {
	Admin      bool
	Categories int
	Movies     int
	Foods      int
}

var seedCategories = []models.Category{
	{Name: "Action", Slug: "action", Order: 1},
	{Name: "Comedy", Slug: "comedy", Order: 2},
	{Name: "Drama", Slug: "drama", Order: 3},
	{Name: "Romance", Slug: "romance", Order: 4},
	{Name: "Thriller", Slug: "thriller", Order: 5},
	{Name: "Horror", Slug: "horror", Order: 6},
	{Name: "Documentary", Slug: "documentary", Order: 7},
	{Name: "Ugandan Films", Slug: "ugandan-films", Order: 8},
}

type seedMovie struct {
	movie    models.Movie
	category string // slug
}

func intPtr(v int) *int { return &v }

var seedMovies = []seedMovie{
	{
		movie: models.Movie{
			Title:        "The Quest for Kampala",
			Description:  "An epic action adventure set in modern-day Kampala, following a hero on a mission to save the city.",
			ThumbnailURL: "https://via.placeholder.com/300x450/FF6B6B/FFFFFF?text=Quest+for+Kampala",
			VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Duration:     596,
			ReleaseYear:  intPtr(2024),
			Director:     "John Ssempa",
			Cast:         pq.StringArray{"Actor One", "Actor Two"},
			Language:     "English",
			IsFeatured:   true,
		},
		category: "action",
	},
	{
		movie: models.Movie{
			Title:        "Laughter in Entebbe",
			Description:  "A hilarious comedy about a group of friends navigating life in Entebbe with humor and heart.",
			ThumbnailURL: "https://via.placeholder.com/300x450/4ECDC4/FFFFFF?text=Laughter+Entebbe",
			VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Duration:     654,
			ReleaseYear:  intPtr(2024),
			Director:     "Mary Nakato",
			Cast:         pq.StringArray{"Comic One", "Comic Two"},
			Language:     "Luganda",
			IsFeatured:   true,
		},
		category: "comedy",
	},
	{
		movie: models.Movie{
			Title:        "Heart of Uganda",
			Description:  "A touching documentary exploring the rich culture and traditions of Uganda.",
			ThumbnailURL: "https://via.placeholder.com/300x450/95E1D3/FFFFFF?text=Heart+of+Uganda",
			VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			Duration:     15,
			ReleaseYear:  intPtr(2023),
			Director:     "Peter Mukasa",
			Cast:         pq.StringArray{},
			Language:     "English",
		},
		category: "ugandan-films",
	},
}

var seedFoods = []models.Food{
	{
		Name:        "Rolex",
		Category:    "Street Food",
		Price:       decimal.NewFromInt(3000),
		Location:    "Kampala, Uganda",
		ImageURL:    "https://images.unsplash.com/photo-1544025162-d76694265947?w=800",
		Description: "A popular Ugandan street food made with eggs and vegetables rolled in a chapati.",
		Ingredients: pq.StringArray{"Eggs", "Chapati", "Cabbage", "Tomatoes", "Onions"},
	},
	{
		Name:        "Matooke",
		Category:    "Traditional",
		Price:       decimal.NewFromInt(5000),
		Location:    "Kampala, Uganda",
		ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800",
		Description: "A traditional Ugandan dish made from steamed green bananas, often served with groundnut sauce.",
		Ingredients: pq.StringArray{"Green bananas", "Groundnut sauce", "Spices"},
	},
	{
		Name:        "Luwombo",
		Category:    "Main Course",
		Price:       decimal.NewFromInt(15000),
		Location:    "Kampala, Uganda",
		ImageURL:    "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=800",
		Description: "A royal delicacy of meat, chicken, or fish steamed in banana leaves with vegetables.",
		Ingredients: pq.StringArray{"Chicken", "Banana leaves", "Mushrooms", "Peanut sauce", "Vegetables"},
	},
	{
		Name:        "Muchomo",
		Category:    "Street Food",
		Price:       decimal.NewFromInt(10000),
		Location:    "Kampala, Uganda",
		ImageURL:    "https://images.unsplash.com/photo-1529692236671-f1f6cf9683ba?w=800",
		Description: "Grilled meat skewers, a popular street food in Uganda often served with roasted plantains.",
		Ingredients: pq.StringArray{"Beef", "Goat meat", "Spices", "Salt"},
	},
	{
		Name:        "Kikomando",
		Category:    "Street Food",
		Price:       decimal.NewFromInt(2500),
		Location:    "Kampala, Uganda",
		ImageURL:    "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=800",
		Description: "A beloved Ugandan dish consisting of beans and chapati, simple yet satisfying.",
		Ingredients: pq.StringArray{"Beans", "Chapati", "Onions", "Tomatoes"},
	},
}

// Seed loads the starter catalog and admin account. Running it again inserts nothing new.
func Seed(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string, logger *zap.Logger) (SeedResult, error) {
	var result SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := ensureAdmin(tx, adminEmail, adminPassword, "Admin User", false)
		if err != nil {
			return err
		}
		result.Admin = created

		categories := make(map[string]models.Category, len(seedCategories))
		for _, c := range seedCategories {
			category := c
			created, err := createUnlessExists(tx, &category, "slug = ?", category.Slug)
			if err != nil {
				return fmt.Errorf("seed category %s: %w", category.Slug, err)
			}
			if created {
				result.Categories++
			}
			categories[category.Slug] = category
		}

		for _, m := range seedMovies {
			movie := m.movie
			if cat, ok := categories[m.category]; ok {
				movie.Categories = []models.Category{cat}
			}
			created, err := createUnlessExists(tx, &movie, "title = ?", movie.Title)
			if err != nil {
				return fmt.Errorf("seed movie %q: %w", movie.Title, err)
			}
			if created {
				result.Movies++
			}
		}

		for _, f := range seedFoods {
			food := f
			food.IsAvailable = true
			created, err := createUnlessExists(tx, &food, "name = ?", food.Name)
			if err != nil {
				return fmt.Errorf("seed food %q: %w", food.Name, err)
			}
			if created {
				result.Foods++
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	logger.Info("Database seeded",
		zap.Bool("admin_created", result.Admin),
		zap.Int("categories", result.Categories),
		zap.Int("movies", result.Movies),
		zap.Int("foods", result.Foods),
	)
	return result, nil
}

// createUnlessExists inserts row unless one matches the query; it reports whether it inserted.
func createUnlessExists[T any](tx *gorm.DB, row *T, query string, args ...any) (bool, error) {
	var existing T
	res := tx.Where(query, args...).Limit(1).Find(&existing)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		*row = existing
		return false, nil
	}
	if err := tx.Create(row).Error; err != nil {
		return false, err
	}
	return true, nil
}

// CreateAdmin creates an ADMIN account, or promotes and reactivates an existing one.
// It reports whether a new row was inserted.
func CreateAdmin(ctx context.Context, db *gorm.DB, email, password, name string) (bool, error) {
	return ensureAdmin(db.WithContext(ctx), email, password, name, true)
}

func ensureAdmin(tx *gorm.DB, email, password, name string, promote bool) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false, errors.New("admin email is required")
	}

	var existing models.User
	res := tx.Where("email = ?", email).Limit(1).Find(&existing)
	if res.Error != nil {
		return false, fmt.Errorf("look up admin: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		if !promote {
			return false, nil
		}
		return false, tx.Model(&existing).Updates(map[string]any{"role": models.RoleAdmin, "is_active": true}).Error
	}

	if len(password) < 6 {
		return false, errors.New("admin password must be at least 6 characters")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	admin := &models.User{Email: email, Password: hash, Name: name, Role: models.RoleAdmin, IsActive: true}
	if err := tx.Create(admin).Error; err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
