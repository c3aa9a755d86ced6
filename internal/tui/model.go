// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/verte-zerg/typereader/internal/document"
	"github.com/verte-zerg/typereader/internal/matcher"
	"github.com/verte-zerg/typereader/internal/model"
	"github.com/verte-zerg/typereader/internal/store"
	"github.com/verte-zerg/typereader/internal/theme"
	"github.com/verte-zerg/typereader/internal/typing"
)

type screen int

const (
	screenPicker screen = iota
	screenPractice
	screenDone
)

type charStat struct {
	correct      int
	incorrect    int
	latencySumMs int64
	latencyCount int64
}

// Options configures a Model.
type Options struct {
	Config model.Config
	Theme  theme.Theme
	Store  *store.Store
	Logger *zap.Logger
	// Book skips the file picker when set.
	Book *typing.Book
	// StartDir is where the file picker opens.
	StartDir string
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	config model.Config
	theme  theme.Theme
	styles theme.Styles
	store  *store.Store
	logger *zap.Logger
	keys   keyMap

	picker   filepicker.Model
	input    textinput.Model
	progress progress.Model
	help     help.Model

	screen  screen
	book    *typing.Book
	session typing.Session
	alert   string

	width  int
	height int

	// Keystroke stats for the current chunk.
	started       bool
	startedAt     time.Time
	prevCorrectAt time.Time
	typedLen      int
	correct       int
	incorrect     int
	charStats     map[string]*charStat
}

// NewModel constructs a typing TUI model.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		config: opts.Config,
		store:  opts.Store,
		logger: logger,
		keys:   defaultKeyMap(),
		help:   help.New(),
		screen: screenPicker,
	}

	m.picker = filepicker.New()
	m.picker.AllowedTypes = []string{".txt"}
	m.picker.CurrentDirectory = opts.StartDir
	if m.picker.CurrentDirectory == "" {
		m.picker.CurrentDirectory = "."
	}

	m.input = textinput.New()
	m.input.Placeholder = "Type here..."
	m.input.Prompt = ""
	m.input.Focus()

	m.applyTheme(opts.Theme)
	if opts.Book != nil {
		m.startBook(opts.Book)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.screen == screenPicker {
		return m.picker.Init()
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.screen == screenPicker {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			m.picker.Height = max(3, msg.Height-8)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.applyTheme(theme.Next(m.theme.Key))
			return m, nil
		}
	}

	switch m.screen {
	case screenPicker:
		return m.updatePicker(msg)
	case screenPractice:
		return m.updatePractice(msg)
	default:
		if msg, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(msg, m.keys.Exit) || key.Matches(msg, m.keys.Confirm) {
				return m, tea.Quit
			}
		}
		return m, nil
	}
}

func (m *Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		if err := m.openFile(path); err != nil {
			m.alert = fmt.Sprintf("Failed to process file: %v", err)
			m.logger.Warn("failed to open book", zap.String("path", path), zap.Error(err))
			return m, cmd
		}
		return m, textinput.Blink
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.alert = fmt.Sprintf("Please choose a .txt file (%s)", path)
		return m, cmd
	}
	return m, cmd
}

func (m *Model) updatePractice(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			next, ev := m.session.Confirm()
			m.applyTransition(next, ev)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.handleInput(value)
	}
	return m, cmd
}

func (m *Model) openFile(path string) error {
	doc, err := document.Load(path, document.Options{ASCIIOnly: m.config.ASCIIOnly})
	if err != nil {
		return err
	}
	book, err := typing.NewBook(doc.Name, doc.Content, m.config.MaxLength)
	if err != nil {
		return err
	}
	m.startBook(book)
	return nil
}

func (m *Model) startBook(book *typing.Book) {
	m.book = book
	m.alert = ""
	m.screen = screenPractice
	m.logger.Info("book loaded",
		zap.String("book", book.Name()),
		zap.Int("chunks", book.Len()),
		zap.Int("max_length", m.config.MaxLength))
	m.resetChunk()
}

func (m *Model) resetChunk() {
	m.session = typing.NewSession(m.book.Chunk())
	m.input.SetValue("")
	m.started = false
	m.startedAt = time.Time{}
	m.prevCorrectAt = time.Time{}
	m.typedLen = 0
	m.correct = 0
	m.incorrect = 0
	m.charStats = map[string]*charStat{}
}

func (m *Model) handleInput(value string) {
	target, ok := m.session.CurrentWord()
	if !ok {
		return
	}
	if !m.started {
		m.started = true
		m.startedAt = time.Now()
	}
	m.recordKeystrokes(matcher.Graphemes(value), matcher.Graphemes(target))

	next, ev := m.session.Type(value)
	m.applyTransition(next, ev)
	if ev == typing.EventNone && m.input.Value() != next.Buffer() {
		m.input.SetValue(next.Buffer())
	}
}

func (m *Model) applyTransition(next typing.Session, ev typing.Event) {
	m.session = next
	switch ev {
	case typing.EventWordAccepted:
		m.input.SetValue("")
		m.typedLen = 0
		m.logger.Debug("word accepted", zap.Int("chunk", m.book.Index()), zap.Int("word", next.WordIndex()-1))
	case typing.EventChunkComplete:
		m.input.SetValue("")
		m.typedLen = 0
		m.finishChunk()
	}
}

// recordKeystrokes counts newly typed characters against the target word.
func (m *Model) recordKeystrokes(typed, target []string) {
	for i := m.typedLen; i < len(typed); i++ {
		expected := ""
		if i < len(target) {
			expected = target[i]
		}
		m.updateStats(expected, typed[i])
	}
	m.typedLen = len(typed)
}

func (m *Model) updateStats(expected, typed string) {
	if expected == "" {
		m.incorrect++
		return
	}
	entry := m.charEntry(expected)
	if typed == expected {
		m.correct++
		entry.correct++
		now := time.Now()
		if !m.prevCorrectAt.IsZero() {
			entry.latencySumMs += now.Sub(m.prevCorrectAt).Milliseconds()
			entry.latencyCount++
		}
		m.prevCorrectAt = now
		return
	}
	m.incorrect++
	entry.incorrect++
}

func (m *Model) charEntry(expected string) *charStat {
	entry, ok := m.charStats[expected]
	if !ok {
		entry = &charStat{}
		m.charStats[expected] = entry
	}
	return entry
}

func (m *Model) finishChunk() {
	m.saveChunkResult()
	if m.book.Advance() {
		m.resetChunk()
		return
	}
	m.screen = screenDone
	m.logger.Info("book finished", zap.String("book", m.book.Name()), zap.Int("chunks", m.book.Len()))
}

func (m *Model) saveChunkResult() {
	endedAt := time.Now()
	startedAt := m.startedAt
	if !m.started {
		startedAt = endedAt
	}
	res := model.ChunkResult{
		Book:       m.book.Name(),
		ChunkIndex: m.book.Index(),
		StartedAt:  startedAt,
		EndedAt:    endedAt,
		Words:      m.session.WordCount(),
		Correct:    m.correct,
		Incorrect:  m.incorrect,
		DurationMs: endedAt.Sub(startedAt).Milliseconds(),
	}
	chars := make([]model.CharStats, 0, len(m.charStats))
	for ch, entry := range m.charStats {
		chars = append(chars, model.CharStats{
			Char:         ch,
			Correct:      entry.correct,
			Incorrect:    entry.incorrect,
			LatencySumMs: entry.latencySumMs,
			LatencyCount: entry.latencyCount,
		})
	}

	m.logger.Info("chunk complete",
		zap.String("book", res.Book),
		zap.Int("chunk", res.ChunkIndex),
		zap.Int("words", res.Words),
		zap.Int("correct", res.Correct),
		zap.Int("incorrect", res.Incorrect),
		zap.Int64("duration_ms", res.DurationMs))
	if m.store == nil {
		return
	}
	if _, err := m.store.InsertChunkResult(context.Background(), res, chars); err != nil {
		m.logger.Error("failed to save chunk result", zap.Error(err))
	}
}

func (m *Model) applyTheme(t theme.Theme) {
	if t.Key == "" {
		t = theme.Default()
	}
	m.theme = t
	m.styles = t.Styles()
	m.input.TextStyle = m.styles.Text
	m.input.PlaceholderStyle = m.styles.Subtle
	m.picker.Styles.Selected = m.styles.Title
	m.picker.Styles.Cursor = m.styles.Title
	m.picker.Styles.Directory = m.styles.Accepted
	m.picker.Styles.File = m.styles.Text
	m.picker.Styles.DisabledFile = m.styles.Subtle
	width := m.progress.Width
	m.progress = progress.New(progress.WithGradient(string(t.Primary), string(t.Accent)))
	if width > 0 {
		m.progress.Width = width
	}
	m.logger.Debug("theme applied", zap.String("theme", t.Key))
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	cw := m.contentWidth()
	m.progress.Width = cw
	m.input.Width = max(1, cw-4)
	m.help.Width = cw
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	return max(1, int(float64(m.width)*0.70))
}
