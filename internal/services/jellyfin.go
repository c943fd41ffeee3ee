// Jellyfin API implementation of [MediaService]
//
// Endpoint shapes based on https://api.jellyfin.org/#tag/Items
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/desertthunder/jellycli/internal/models"
	"github.com/desertthunder/jellycli/internal/shared"
)

// Version is the client version string embedded in the authorization header
// and reported by the --version flag.
const Version = "1.0.0"

const (
	clientName = "JellyCli"
	deviceName = "CLI"
)

var _ MediaService = (*JellyfinService)(nil)

// JellyfinService implements [MediaService] for Jellyfin/Emby servers.
//
// All state is fixed at construction: the credential never refreshes and the
// authorization header is computed once.
type JellyfinService struct {
	host       string
	userID     string
	authKey    string
	authHeader string
	httpClient *http.Client
}

// NewJellyfinService creates a Jellyfin client from the loaded server config.
// The http client defaults to [http.DefaultClient].
func NewJellyfinService(config *shared.ServerConfig, client *http.Client) *JellyfinService {
	if client == nil {
		client = http.DefaultClient
	}

	header := fmt.Sprintf(
		`MediaBrowser Client="%s", Device="%s", DeviceId="%s", Version="%s", Token="%s"`,
		clientName, deviceName, config.DeviceID, Version, config.AuthKey,
	)

	return &JellyfinService{
		host:       config.Host,
		userID:     config.UserID,
		authKey:    config.AuthKey,
		authHeader: header,
		httpClient: client,
	}
}

func (j *JellyfinService) Name() string {
	return "Jellyfin"
}

// AuthHeader returns the structured credential sent on every request.
func (j *JellyfinService) AuthHeader() string {
	return j.authHeader
}

// get performs an authenticated GET against the API and decodes the JSON body into result.
func (j *JellyfinService) get(ctx context.Context, fullURL string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Emby-Authorization", j.authHeader)

	resp, err := j.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}

	return nil
}

// ListCollections retrieves the user's top-level collections.
func (j *JellyfinService) ListCollections(ctx context.Context) ([]models.Item, error) {
	endpoint := fmt.Sprintf("%s/Items?userId=%s", j.host, url.QueryEscape(j.userID))

	var page models.ItemsPage
	if err := j.get(ctx, endpoint, &page); err != nil {
		return nil, err
	}

	return page.Items, nil
}

// ListChildren retrieves the child items of parentID.
//
// Episode listings arrive in server order; they are sorted ascending by index
// number so seasons read top to bottom. The sort is stable and a missing
// index counts as 0.
func (j *JellyfinService) ListChildren(ctx context.Context, parentID string) ([]models.Item, error) {
	endpoint := fmt.Sprintf("%s/Items?parentId=%s", j.host, url.QueryEscape(parentID))

	var page models.ItemsPage
	if err := j.get(ctx, endpoint, &page); err != nil {
		return nil, err
	}

	items := page.Items
	if len(items) > 0 && items[0].Type == "Episode" {
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].IndexNumber < items[b].IndexNumber
		})
	}

	return items, nil
}

// DownloadURL formats the stream URL for itemID. Pure function of
// (host, itemID, authKey).
func (j *JellyfinService) DownloadURL(itemID string) string {
	return fmt.Sprintf("%s/Items/%s/Download?api_key=%s", j.host, itemID, url.QueryEscape(j.authKey))
}
