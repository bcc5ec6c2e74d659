package objects

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface for buckets and objects.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new objects feature.
func NewFeature(repo *Repository) *Feature {
	return &Feature{handler: NewHandler(repo)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "objects"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
