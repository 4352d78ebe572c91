package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/datelens/datelens/internal/config"
	"github.com/datelens/datelens/internal/datefmt"
	"github.com/datelens/datelens/internal/overlay"
	"github.com/datelens/datelens/internal/relative"
	"github.com/datelens/datelens/internal/store"
)

// View identifies the active screen.
type View int

const (
	// ViewDocument shows the transformed text buffer.
	ViewDocument View = iota
	// ViewSettings shows the settings form.
	ViewSettings
)

// Messages.
type (
	fileChangedMsg struct{}
	tickMsg        time.Time
	errMsg         struct{ err error }
)

// rescanInterval keeps displayed phrases fresh as wall-clock time advances.
const rescanInterval = 30 * time.Second

// AppModel is the viewer application model.
type AppModel struct {
	cfg     *config.Config
	store   *store.Store
	pattern *datefmt.Pattern
	keys    KeyMap
	help    help.Model

	path string
	text string

	// Scan state. now is sampled once per scan so one pass is internally
	// consistent. clock is swappable for tests.
	occs   []overlay.Occurrence
	reps   []overlay.Replacement
	now    time.Time
	clock  func() time.Time
	cursor int

	currentView View
	settings    *SettingsModel

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	watcher      *fsnotify.Watcher
	fileChangeCh chan struct{}

	err error
}

// NewAppModel creates the viewer for a document path.
func NewAppModel(cfg *config.Config, st *store.Store, path string) *AppModel {
	LoadThemeFromStore(st.GetSetting)

	keys := DefaultKeyMap()
	if kb, err := config.LoadKeybindings(); err == nil {
		keys = keys.ApplyKeybindings(kb)
	}

	h := help.New()
	h.ShowAll = false

	watcher, _ := fsnotify.NewWatcher()

	return &AppModel{
		cfg:          cfg,
		store:        st,
		pattern:      cfg.Pattern(),
		keys:         keys,
		help:         h,
		path:         path,
		clock:        time.Now,
		watcher:      watcher,
		fileChangeCh: make(chan struct{}, 1),
	}
}

// Init loads the document and starts the file watcher.
func (m *AppModel) Init() tea.Cmd {
	m.startFileWatcher()
	return tea.Batch(m.loadDocument(), m.waitForFileChange(), m.tick())
}

// loadDocument reads the file and rescans it against a fresh reference time.
func (m *AppModel) loadDocument() tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(m.path)
		if err != nil {
			return errMsg{fmt.Errorf("read %s: %w", m.path, err)}
		}
		return documentLoadedMsg{text: string(data)}
	}
}

type documentLoadedMsg struct{ text string }

func (m *AppModel) tick() tea.Cmd {
	return tea.Tick(rescanInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// startFileWatcher watches the document's directory; watching the file
// itself breaks on editors that replace-on-save.
func (m *AppModel) startFileWatcher() {
	if m.watcher == nil {
		return
	}
	dir := filepath.Dir(m.path)
	if err := m.watcher.Add(dir); err != nil {
		return
	}
	name := filepath.Base(m.path)
	go func() {
		for {
			select {
			case ev, ok := <-m.watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case m.fileChangeCh <- struct{}{}:
				default:
				}
			case _, ok := <-m.watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

func (m *AppModel) waitForFileChange() tea.Cmd {
	return func() tea.Msg {
		<-m.fileChangeCh
		return fileChangedMsg{}
	}
}

// rescan recomputes the full occurrence set from scratch over the current
// text. Prior spans are invalid after any edit, so nothing incremental is
// attempted.
func (m *AppModel) rescan() {
	m.now = m.clock()
	m.occs = overlay.Scan(m.pattern, m.text)
	m.reconcile()
}

// reconcile recomputes replacement directives for the current cursor
// without re-sampling the reference time.
func (m *AppModel) reconcile() {
	m.reps = overlay.Reconcile(m.pattern, m.occs, m.cursor, m.now)
	if m.ready {
		m.viewport.SetContent(renderDocument(m.text, m.reps, m.cursor))
	}
}

// Update handles messages. Scan-loop messages are handled before view
// routing so the tick and watcher chains survive an open settings form.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 1
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.reconcile()

	case documentLoadedMsg:
		m.text = msg.text
		if m.cursor > len(m.text) {
			m.cursor = len(m.text)
		}
		m.err = nil
		m.rescan()
		return m, nil

	case fileChangedMsg:
		return m, tea.Batch(m.loadDocument(), m.waitForFileChange())

	case tickMsg:
		m.rescan()
		return m, m.tick()

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	if m.currentView == ViewSettings && m.settings != nil {
		return m.updateSettings(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		return m.updateDocument(k)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *AppModel) updateDocument(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = moveVertical(m.text, m.cursor, -1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveVertical(m.text, m.cursor, 1)
	case key.Matches(msg, m.keys.Left):
		m.cursor = moveHorizontal(m.text, m.cursor, -1)
	case key.Matches(msg, m.keys.Right):
		m.cursor = moveHorizontal(m.text, m.cursor, 1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.text)
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.NextDate):
		m.jumpToDate(1)
	case key.Matches(msg, m.keys.PrevDate):
		m.jumpToDate(-1)

	case key.Matches(msg, m.keys.Reload):
		return m, m.loadDocument()

	case key.Matches(msg, m.keys.Settings):
		m.settings = NewSettingsModel(m.cfg, m.store)
		m.currentView = ViewSettings
		return m, m.settings.Init()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.scrollToCursor()
	m.reconcile()
	return m, nil
}

// jumpToDate moves the cursor to the next or previous occurrence start.
func (m *AppModel) jumpToDate(dir int) {
	if len(m.occs) == 0 {
		return
	}
	if dir > 0 {
		for _, o := range m.occs {
			if o.Start > m.cursor {
				m.cursor = o.Start
				return
			}
		}
		m.cursor = m.occs[0].Start
		return
	}
	for i := len(m.occs) - 1; i >= 0; i-- {
		if m.occs[i].End < m.cursor {
			m.cursor = m.occs[i].Start
			return
		}
	}
	m.cursor = m.occs[len(m.occs)-1].Start
}

// scrollToCursor keeps the cursor's line inside the viewport.
func (m *AppModel) scrollToCursor() {
	if !m.ready {
		return
	}
	line := lineAt(lineStarts(m.text), m.cursor)
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m *AppModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, cmd := m.settings.Update(msg)
	if done {
		m.err = m.settings.Err()
		m.pattern = m.cfg.Pattern()
		m.settings = nil
		m.currentView = ViewDocument
		m.rescan()
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m *AppModel) View() string {
	if m.currentView == ViewSettings && m.settings != nil {
		return m.settings.View()
	}
	if !m.ready {
		return "Loading..."
	}

	header := TitleStyle.Render(filepath.Base(m.path)) +
		MutedStyle.Render(fmt.Sprintf("  %d dates · %s", len(m.occs), m.cfg.DateFormat))
	if m.err != nil {
		header = ErrorStyle.Render(m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.statusBar(),
		m.help.View(m.keys),
	)
}

// statusBar surfaces the occurrence under the cursor: while suppressed it
// shows what the phrase would be, which doubles as the hover affordance for
// the original text.
func (m *AppModel) statusBar() string {
	if o, ok := overlay.At(m.occs, m.cursor); ok {
		phrase := relative.Phrase(m.pattern.Parse(o.Literal), m.now)
		if phrase != "" {
			return StatusBarStyle.Width(m.width).Render(
				fmt.Sprintf(" %s ↔ %s", o.Text, phrase))
		}
		return StatusBarStyle.Width(m.width).Render(" " + o.Text)
	}
	return StatusBarStyle.Width(m.width).Render(
		fmt.Sprintf(" offset %d", m.cursor))
}
