package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/page"
	"github.com/desertthunder/lyrx/internal/routes"
	"github.com/desertthunder/lyrx/internal/shared"
)

const (
	copyNoticeDuration = 2 * time.Second

	// Used until the first [tea.WindowSizeMsg] arrives.
	defaultWidth  = 80
	defaultHeight = 24
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	route   routes.Route
	page    *page.Page
	contact shared.ContactConfig
	width   int
	height  int
	input   textinput.Model
	spinner spinner.Model
	lyrics  viewport.Model
	help    help.Model
	keys    keyMap
	copied  bool
	copySeq int
}

// NewModel creates a new TUI model showing start, backed by p.
func NewModel(ctx context.Context, p *page.Page, contact shared.ContactConfig, start routes.Route) *Model {
	keys := newKeyMap()

	input := textinput.New()
	input.Prompt = "URL › "
	input.Placeholder = "https://www.youtube.com/watch?v=..."
	input.CharLimit = 2048
	input.SetValue(p.URL)

	lyrics := viewport.New(0, 0)
	lyrics.KeyMap = keys.viewportKeys()

	m := &Model{
		ctx:     ctx,
		route:   start,
		page:    p,
		contact: contact,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.ok)),
		lyrics:  lyrics,
		help:    help.New(),
		keys:    keys,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.resize()
	m.focus()
	m.refreshLyrics()
	return m
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case spinner.TickMsg:
		if !m.page.IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case Msg:
		switch msg.kind {
		case MsgLyricsFetched:
			result := msg.data.(lyricsResult)
			m.page.Complete(result.resp, result.err)
			m.refreshLyrics()
		case MsgCopyExpired:
			if seq, ok := msg.data.(int); ok && seq == m.copySeq {
				m.copied = false
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the tab bar and the current page.
func (m *Model) View() string {
	var body string
	switch m.route {
	case routes.Contact:
		body = m.renderContact()
	default:
		body = m.renderHome()
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", m.renderTabs(), body, m.help.ShortHelpView(m.keys.ShortHelp()))
}

// Route returns the page currently shown.
func (m *Model) Route() routes.Route {
	return m.route
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.nextPage):
		m.route = routes.Next(m.route)
		m.focus()
		return m, nil
	}

	if m.route != routes.Home {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.copy):
		return m, m.copyLyrics()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.page.URL = m.input.Value()

	m.lyrics, cmd = m.lyrics.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit starts a fetch for the current input; an empty input does nothing.
//
// A submission while another is in flight starts a second, independent request.
func (m *Model) submit() tea.Cmd {
	m.page.URL = m.input.Value()
	url, ok := m.page.Start()
	if !ok {
		return nil
	}
	return tea.Batch(m.fetch(url), m.spinner.Tick)
}

func (m *Model) fetch(url string) tea.Cmd {
	request := m.page.Request(m.ctx, url)
	return func() tea.Msg {
		resp, err := request()
		return lyricsFetchedMsg(resp, err)
	}
}

func (m *Model) copyLyrics() tea.Cmd {
	if !m.page.CopyLyrics() {
		return nil
	}

	m.copied = true
	m.copySeq++
	seq := m.copySeq
	return tea.Tick(copyNoticeDuration, func(time.Time) tea.Msg {
		return copyExpiredMsg(seq)
	})
}

func (m *Model) focus() {
	if m.route == routes.Home {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m *Model) resize() {
	m.input.Width = max(m.width-10, 10)
	m.help.Width = m.width
	m.lyrics.Width = max(m.width-4, 10)
	m.lyrics.Height = max(m.height-14, 3)
}

func (m *Model) refreshLyrics() {
	content := m.page.Lyrics
	if m.page.TranslatedLyrics != "" {
		content = fmt.Sprintf("%s\n\n── %s ──\n\n%s", content, m.page.SelectedLang, m.page.TranslatedLyrics)
	}
	m.lyrics.SetContent(content)
	m.lyrics.GotoTop()
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, len(routes.All))
	for _, r := range routes.All {
		if r == m.route {
			tabs = append(tabs, styles.tabOn.Render(r.String()))
		} else {
			tabs = append(tabs, styles.tab.Render(r.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderHome() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Get the lyrics of any song"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.page.IsLoading {
		b.WriteString(fmt.Sprintf("\n%s %s\n", m.spinner.View(), styles.warn.Render("Fetching lyrics...")))
	}

	if m.page.ErrorMessage != "" {
		b.WriteString("\n" + styles.err.Render(m.page.ErrorMessage) + "\n")
	}

	if info := m.page.SongInfo; info != nil {
		b.WriteString("\n" + styles.ok.Render(formatter.Heading(*info)) + "\n")
		if info.HasThumbnail() {
			b.WriteString(styles.help.Render(info.ThumbnailURL()) + "\n")
		}
	}

	if m.page.Lyrics != "" {
		b.WriteString("\n" + m.lyrics.View() + "\n")
	}

	if m.copied {
		b.WriteString("\n" + styles.ok.Render("✓ Lyrics copied to clipboard") + "\n")
	}

	return b.String()
}

func (m *Model) renderContact() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Contact"))
	b.WriteString("\n")
	if m.contact.Message != "" {
		b.WriteString(m.contact.Message + "\n\n")
	}
	if m.contact.Name != "" {
		b.WriteString(fmt.Sprintf("Name:  %s\n", m.contact.Name))
	}
	if m.contact.Email != "" {
		b.WriteString(fmt.Sprintf("Email: %s\n", m.contact.Email))
	}
	if m.contact.URL != "" {
		b.WriteString(fmt.Sprintf("Web:   %s\n", m.contact.URL))
	}
	return b.String()
}
