package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/jellycli/internal/models"
)

var _ list.Item = browseItem{}

// browseItem wraps [models.Item] to implement [list.Item].
type browseItem struct {
	item models.Item
}

func (i browseItem) FilterValue() string { return i.item.Name }
func (i browseItem) Title() string {
	return fmt.Sprintf("%s %s", i.item.Marker(), i.item.Name)
}
func (i browseItem) Description() string {
	desc := i.item.Type
	if desc == "" {
		if i.item.IsFolder {
			desc = "Folder"
		} else {
			desc = "File"
		}
	}
	return fmt.Sprintf("%s • %s", desc, i.item.ID)
}
