// package services defines interface MediaService for interacting with media server HTTP APIs
package services

import (
	"context"

	"github.com/desertthunder/jellycli/internal/models"
)

// MediaService defines the interface for media server backends that expose a
// browsable item hierarchy and per-item stream URLs.
type MediaService interface {
	// ListCollections retrieves the top-level collections for the configured user.
	ListCollections(ctx context.Context) ([]models.Item, error)

	// ListChildren retrieves the child items of the given parent.
	// Episode listings are sorted ascending by index number.
	ListChildren(ctx context.Context, parentID string) ([]models.Item, error)

	// DownloadURL formats the stream URL for an item. No network call.
	DownloadURL(itemID string) string

	// Name returns the name of the backend (e.g., "Jellyfin")
	Name() string
}
