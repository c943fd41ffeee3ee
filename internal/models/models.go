package models

// Item represents a node in the media server's library hierarchy.
//
// ID is non-empty for anything that can be browsed or played. IndexNumber is
// only meaningful for episodes; the server omits it otherwise.
type Item struct {
	ID          string `json:"Id"`
	Name        string `json:"Name"`
	IsFolder    bool   `json:"IsFolder"`
	Type        string `json:"Type,omitempty"`
	VideoType   string `json:"VideoType,omitempty"`
	IndexNumber int    `json:"IndexNumber,omitempty"`
}

// ItemsPage is the envelope returned by the listing endpoints.
type ItemsPage struct {
	Items            []Item `json:"Items"`
	TotalRecordCount int    `json:"TotalRecordCount"`
}

// Playable reports whether the item is a directly playable video file.
func (i Item) Playable() bool {
	return !i.IsFolder && i.VideoType == "VideoFile"
}

// Marker returns the list marker distinguishing folders from playable files.
func (i Item) Marker() string {
	if i.IsFolder {
		return "📁"
	}
	return "🎬"
}
