// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI has two pages, selected through the routes package:
//  1. Home : a URL input, the fetched song metadata and scrollable lyrics
//  2. Contact : static contact details from configuration
//
// The [Model] implements bubbletea/Elm's standard Init/Update/View pattern and owns one [page.Page].
// Submitting runs the lyrics request as a [tea.Cmd]; its result comes back as a [Msg] and is applied in
// Update, so responses are applied in the order they arrive.
//
// Keys: enter fetches, ctrl+y copies the lyrics, tab switches page, pgup/pgdown scroll, esc/ctrl+c quit.
package ui
