package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/journal/internal/gateway"
	"github.com/Makepad-fr/journal/internal/logging"
	"github.com/Makepad-fr/journal/internal/model"
	"github.com/Makepad-fr/journal/internal/source"
	"github.com/Makepad-fr/journal/internal/store"
	"github.com/Makepad-fr/journal/internal/ui"
)

// Simulated loading delays for the demo set.
const (
	initialDelay = time.Second
	demoDelay    = 500 * time.Millisecond
)

type mode int

const (
	browsing mode = iota
	composing
	confirming
)

// Deps are the collaborators the view is built from.
type Deps struct {
	Store   *store.Store
	Gateway *gateway.Gateway
	Loader  *source.Loader
	Log     *log.Logger
	// Source is loaded on startup.
	Source source.Mode
}

type (
	// loadTickMsg fires when a simulated loading delay elapses.
	loadTickMsg struct {
		seq  int
		mode source.Mode
	}
	loadedMsg struct {
		seq   int
		batch source.Batch
		err   error
	}
	syncedMsg gateway.Result
)

// Model is the top-level view. It owns the entry store; every mutation
// happens in Update.
type Model struct {
	ctx     context.Context
	store   *store.Store
	gateway *gateway.Gateway
	loader  *source.Loader
	log     *log.Logger
	keys    *keyMap

	list    list.Model
	spinner spinner.Model
	form    form

	mode      mode
	editID    int64
	confirmID int64

	importantOnly bool
	source        source.Mode
	initial       source.Mode

	loading bool
	// loadSeq identifies the current load; ticks and results carrying an
	// older value are dropped.
	loadSeq int

	width, height int
}

func New(ctx context.Context, d Deps) Model {
	if d.Store == nil {
		d.Store = store.New()
	}
	if d.Loader == nil {
		d.Loader = source.NewLoader(nil, d.Log)
	}
	if d.Gateway == nil {
		d.Gateway = gateway.New(nil, d.Log)
	}
	if d.Log == nil {
		d.Log = logging.Discard()
	}
	if d.Source == "" {
		d.Source = source.ModeDemo
	}

	keys := defaultKeys()

	l := list.New(nil, entryDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("entry", "entries")
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l/pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h/pgup", "prev page"))
	l.AdditionalShortHelpKeys = keys.listKeys
	l.AdditionalFullHelpKeys = keys.listKeys

	m := Model{
		ctx:     ctx,
		store:   d.Store,
		gateway: d.Gateway,
		loader:  d.Loader,
		log:     d.Log,
		keys:    keys,
		list:    l,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(accentStyle)),
		form:    newForm(),
		source:  source.ModeDemo,
		initial: d.Source,
		loading: true,
		loadSeq: 1,
		width:   80,
		height:  24,
	}
	keys.setLoading(true)
	m.resize()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(ctx context.Context, d Deps) error {
	p := tea.NewProgram(New(ctx, d), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	if m.initial == source.ModeAPI {
		return tea.Batch(m.loadCmd(m.loadSeq, source.ModeAPI), m.spinner.Tick)
	}
	return tea.Batch(tickCmd(m.loadSeq, source.ModeDemo, initialDelay), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case loadTickMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		return m, m.loadCmd(msg.seq, msg.mode)

	case loadedMsg:
		return m.applyLoad(msg)

	case syncedMsg:
		// Already logged by the gateway. Local state is never reconciled.
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelLoad()
			return m, tea.Quit
		}
		switch m.mode {
		case composing:
			return m.updateForm(msg)
		case confirming:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.mode == composing {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelLoad()
		return m, tea.Quit

	case key.Matches(msg, m.keys.New):
		m.mode = composing
		m.editID = 0
		cmd := m.form.open("", "", false)
		m.resize()
		return m, cmd

	case key.Matches(msg, m.keys.Edit):
		sel, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = composing
		m.editID = sel.ID
		cmd := m.form.open(sel.Title, sel.Body, true)
		m.resize()
		return m, cmd

	case key.Matches(msg, m.keys.Delete):
		if sel, ok := m.selected(); ok {
			m.mode = confirming
			m.confirmID = sel.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if sel, ok := m.selected(); ok {
			m.store.ToggleImportant(sel.ID)
			return m, m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.importantOnly = !m.importantOnly
		m.keys.setFiltered(m.importantOnly)
		m.list.Select(0)
		return m, m.refresh()

	case key.Matches(msg, m.keys.FetchAPI):
		return m, m.startLoad(source.ModeAPI, 0)

	case key.Matches(msg, m.keys.Demo):
		return m, m.startLoad(source.ModeDemo, demoDelay)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.nextField()

	case key.Matches(msg, m.keys.Submit):
		title, body, ok := m.form.submit()
		if !ok {
			return m, nil
		}
		var (
			op gateway.Op
			e  model.Entry
		)
		if m.form.editing {
			updated, found := m.store.Update(m.editID, title, body)
			if !found {
				m.log.Warn("edit target gone", "id", m.editID)
				m.closeForm()
				return m, m.refresh()
			}
			op, e = gateway.OpUpdate, updated
		} else {
			op, e = gateway.OpCreate, m.store.Create(title, body)
		}
		m.closeForm()
		cmd := m.refresh()
		if op == gateway.OpCreate {
			m.list.Select(0)
		}
		return m, tea.Batch(cmd, m.syncCmd(op, e))
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = browsing
		e, ok := m.store.Delete(m.confirmID)
		if !ok {
			return m, nil
		}
		return m, tea.Batch(m.refresh(), m.syncCmd(gateway.OpDelete, e))
	case key.Matches(msg, m.keys.Deny):
		m.mode = browsing
	}
	return m, nil
}

func (m Model) applyLoad(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		m.log.Debug("stale load dropped", "seq", msg.seq, "current", m.loadSeq)
		return m, nil
	}
	m.loading = false
	m.keys.setLoading(false)
	if msg.err != nil {
		m.log.Error("load entries", "err", msg.err)
		return m, nil
	}
	m.store.Load(msg.batch.Entries)
	m.source = msg.batch.Mode
	m.log.Info("entries loaded", "source", m.source, "count", m.store.Len(), "fallback", msg.batch.Fallback)
	m.list.Select(0)
	return m, m.refresh()
}

// startLoad replaces any load in flight.
func (m *Model) startLoad(mode source.Mode, delay time.Duration) tea.Cmd {
	m.loadSeq++
	m.loading = true
	m.keys.setLoading(true)
	var load tea.Cmd
	if delay > 0 {
		load = tickCmd(m.loadSeq, mode, delay)
	} else {
		load = m.loadCmd(m.loadSeq, mode)
	}
	return tea.Batch(load, m.spinner.Tick)
}

// cancelLoad invalidates any pending timer or fetch result.
func (m *Model) cancelLoad() {
	m.loadSeq++
	m.loading = false
}

func (m *Model) closeForm() {
	m.form.close()
	m.mode = browsing
	m.editID = 0
	m.resize()
}

func (m *Model) refresh() tea.Cmd {
	entries := m.store.Filter(m.importantOnly)
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{e}
	}
	return m.list.SetItems(items)
}

func (m Model) selected() (model.Entry, bool) {
	it, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return model.Entry{}, false
	}
	return it.Entry, true
}

func (m *Model) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.form.setWidth(w - 4)
	reserved := 6
	if m.mode == composing {
		reserved += 16
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
}

func tickCmd(seq int, mode source.Mode, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return loadTickMsg{seq: seq, mode: mode} })
}

func (m Model) loadCmd(seq int, mode source.Mode) tea.Cmd {
	loader, ctx := m.loader, m.ctx
	return func() tea.Msg {
		b, err := loader.Load(ctx, mode)
		return loadedMsg{seq: seq, batch: b, err: err}
	}
}

func (m Model) syncCmd(op gateway.Op, e model.Entry) tea.Cmd {
	g, ctx := m.gateway, m.ctx
	return func() tea.Msg {
		return syncedMsg(g.Mirror(ctx, op, e))
	}
}

func (m Model) header() string {
	head := fmt.Sprintf("%s   %s %d  %s %d",
		titleStyle.Render("📖 My Journal"),
		importantStyle.Render(starOn), m.store.ImportantCount(),
		accentStyle.Render("Total"), m.store.Len(),
	)
	notice := demoNoticeStyle.Render(m.source.Notice())
	if m.source == source.ModeAPI {
		notice = apiNoticeStyle.Render(m.source.Notice())
	}
	if m.importantOnly {
		notice += mutedStyle.Render("  • important only")
	}
	if m.loading {
		notice += "  " + m.spinner.View() + mutedStyle.Render(" Loading...")
	}
	return head + "\n" + notice
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	switch {
	case m.loading && m.store.Len() == 0:
		b.WriteString(mutedStyle.Render("Loading your journal entries..."))
	case m.store.Len() == 0:
		b.WriteString(mutedStyle.Render("No journal entries yet. Start writing your thoughts!"))
	case len(m.list.Items()) == 0:
		b.WriteString(mutedStyle.Render("No important entries yet. Press f to show all."))
	default:
		b.WriteString(m.list.View())
	}

	switch m.mode {
	case composing:
		b.WriteString("\n")
		b.WriteString(m.form.view())
	case confirming:
		title := ""
		if e, ok := m.store.Get(m.confirmID); ok {
			title = ui.Truncate(e.Title, 40)
		}
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(
			errorStyle.Render("Are you sure you want to delete this entry?") + "\n" +
				title + "\n" + helpStyle.Render("y delete • n keep")))
	}
	return panelString(b.String())
}
