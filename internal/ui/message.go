package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/lyrx/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgLyricsFetched MsgKind = iota
	MsgCopyExpired
)

type lyricsResult struct {
	resp *models.LyricsResponse
	err  error
}

// lyricsFetchedMsg is the constructor for [MsgLyricsFetched]
func lyricsFetchedMsg(resp *models.LyricsResponse, err error) Msg {
	return Msg{kind: MsgLyricsFetched, data: lyricsResult{resp, err}}
}

// copyExpiredMsg is the constructor for [MsgCopyExpired]; seq identifies which copy notice expired.
func copyExpiredMsg(seq int) Msg {
	return Msg{kind: MsgCopyExpired, data: seq}
}
