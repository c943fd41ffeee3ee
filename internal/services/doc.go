// Package services defines the [MediaService] interface for media server
// backends and implements it for the Jellyfin HTTP API.
//
// # Service Interface
//
// The browser, TUI and CLI commands depend only on [MediaService], so tests
// substitute a fake and a future Emby or local-filesystem backend slots in
// without touching the callers.
//
// # Jellyfin Implementation
//
// [JellyfinService] talks to the two read endpoints of the server's /Items
// resource with a static API-key credential. The structured authorization
// header is built once at construction and sent on every request; there is no
// token refresh, retry or pagination.
//
// # Error Handling
//
// Transport failures and non-2xx responses wrap [shared.ErrAPIRequest]. The
// CLI treats that error as fatal, but callers embedding the service may
// recover from it.
package services
