package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/jellycli/internal/models"
	"github.com/desertthunder/jellycli/internal/services"
)

// Player launches playback of a resolved stream URL.
type Player interface {
	Play(url, title string) error
}

// crumb is one entry of the breadcrumb stack.
type crumb struct {
	id   string
	name string
}

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	media  services.MediaService
	player Player
	width  int
	height int
	path   []crumb
	list   list.Model
	items  []models.Item
	status string
	err    error
	help   help.Model
	keys   keyMap
}

type itemsFetchedMsg struct {
	items []models.Item
	err   error
}

type playbackMsg struct {
	title string
	err   error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, media services.MediaService, player Player) *Model {
	return &Model{
		ctx:    ctx,
		media:  media,
		player: player,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init initializes the TUI by fetching the top-level collections.
func (m *Model) Init() tea.Cmd {
	return m.fetchItems()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.list.Width() != 0 {
			m.list.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case itemsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.items = msg.items
		items := make([]list.Item, len(msg.items))
		for i, item := range msg.items {
			items[i] = browseItem{item: item}
		}
		m.list = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.list.Title = m.breadcrumb()
		m.list.SetSize(m.width-4, m.height-8)
		return m, nil

	case playbackMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Could not play %s: %v", msg.title, msg.err))
		} else {
			m.status = styles.ok.Render(fmt.Sprintf("Playing: %s", msg.title))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the current node and status line.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())

	if m.status != "" {
		return fmt.Sprintf("%s\n%s\n\n%s", m.list.View(), m.status, helpView)
	}
	return fmt.Sprintf("%s\n\n%s", m.list.View(), helpView)
}

// Err returns the fatal error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if len(m.path) == 0 {
			return m, tea.Quit
		}
		m.path = m.path[:len(m.path)-1]
		m.status = ""
		return m, m.fetchItems()

	case "enter":
		selected := m.list.SelectedItem()
		if selected == nil {
			return m, nil
		}
		bi, ok := selected.(browseItem)
		if !ok {
			return m, nil
		}

		switch {
		case bi.item.IsFolder:
			m.path = append(m.path, crumb{id: bi.item.ID, name: bi.item.Name})
			m.status = ""
			return m, m.fetchItems()
		case bi.item.Playable():
			return m, m.playItem(bi.item)
		default:
			m.status = styles.warn.Render(fmt.Sprintf("Cannot play item: %s", bi.item.Name))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) breadcrumb() string {
	if len(m.path) == 0 {
		return "Collections"
	}

	names := make([]string, len(m.path))
	for i, c := range m.path {
		names[i] = c.name
	}
	return strings.Join(names, " > ")
}

func (m *Model) fetchItems() tea.Cmd {
	parentID := ""
	if len(m.path) > 0 {
		parentID = m.path[len(m.path)-1].id
	}

	return func() tea.Msg {
		if parentID == "" {
			items, err := m.media.ListCollections(m.ctx)
			return itemsFetchedMsg{items: items, err: err}
		}
		items, err := m.media.ListChildren(m.ctx, parentID)
		return itemsFetchedMsg{items: items, err: err}
	}
}

func (m *Model) playItem(item models.Item) tea.Cmd {
	url := m.media.DownloadURL(item.ID)
	return func() tea.Msg {
		return playbackMsg{title: item.Name, err: m.player.Play(url, item.Name)}
	}
}
