// Package ui implements a full-screen library browser using bubbletea's Elm architecture.
//
// The TUI is an alternative front end to the line-oriented navigator: one
// [list.Model] shows the current node of the item tree, enter descends into
// folders or hands playable files to the player, esc pops the breadcrumb
// stack (quitting at the root). The [Model] implements bubbletea's standard
// Init/Update/View pattern; fetches run as commands so the interface never
// blocks on the network.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
