// Package models defines the data transfer objects for the media server API.
//
// The server returns PascalCase JSON; [Item] normalizes a single node of the
// library hierarchy (folder or playable file) and [ItemsPage] is the envelope
// of every listing endpoint. Items are built fresh from each response and
// never persisted; the only mutation after construction is the transient
// sibling sort applied to episode listings.
package models
