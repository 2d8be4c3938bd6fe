package seeders

import (
	"context"
	"time"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/database"
)

// ProductSeeder inserts a small demo catalog. It is a no-op when the
// products collection already has documents, so reseeding is safe.
type ProductSeeder struct{}

func (s *ProductSeeder) Name() string { return "products" }

func (s *ProductSeeder) Run(ctx context.Context, db *database.Mongo) error {
	col := db.Products()

	count, err := col.CountDocuments(ctx, map[string]any{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	demo := []struct {
		name     string
		category string
		newPrice float64
		oldPrice float64
	}{
		{"Striped Flutter Sleeve Blouse", "women", 50.0, 80.5},
		{"Peplum Overlap Collar Top", "women", 85.0, 120.5},
		{"Maroon Zipper Bomber Jacket", "men", 85.0, 120.5},
		{"Slim Fit Checked Shirt", "men", 60.0, 100.5},
		{"Hooded Cotton Sweatshirt", "kid", 40.0, 60.5},
		{"Colour-Block Crew Tee", "kid", 30.0, 50.5},
		{"Sheer Sleeve Maxi Dress", "women", 100.0, 150.0},
		{"Ribbed Knit Cardigan", "women", 90.0, 130.0},
	}

	docs := make([]interface{}, 0, len(demo))
	for i, d := range demo {
		docs = append(docs, models.Product{
			CatalogID: i + 1,
			Name:      d.name,
			Image:     "https://placehold.co/400x500",
			Category:  d.category,
			NewPrice:  d.newPrice,
			OldPrice:  d.oldPrice,
			Date:      now,
			Available: true,
		})
	}

	_, err = col.InsertMany(ctx, docs)
	return err
}
