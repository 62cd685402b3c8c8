package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/common"
	"github.com/Akashdeep-Patra/listkit/internal/config"
	"github.com/Akashdeep-Patra/listkit/internal/logging"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
	"github.com/Akashdeep-Patra/listkit/internal/ui/components"
)

// Dialog tags.
const (
	tagSave   = "save"
	tagSaveAs = "save-as"
)

// Options configure the application model.
type Options struct {
	// Source is where the collection was loaded from. Nil means the built-in
	// sample; saving then asks for a path.
	Source collection.Source
	Config *config.Config
	Items  common.Items
	Title  string
	Views  map[common.TabID]common.View
	Styles ui.Styles
	Keys   KeyMap
	// ListKeys feed the help overlay.
	ListKeys components.ListKeyMap
	Logger   *slog.Logger
}

// Model is the top-level Bubbletea model. It owns the canonical collection:
// views ask for reorders with MoveMsg and receive every new snapshot as a
// CollectionMsg.
type Model struct {
	source    collection.Source
	cfg       *config.Config
	styles    ui.Styles
	keys      KeyMap
	listKeys  components.ListKeyMap
	log       *slog.Logger
	width     int
	height    int
	activeTab common.TabID
	views     map[common.TabID]common.View
	items     common.Items
	title     string
	dirty     bool
	showHelp  bool
	statusMsg string
	statusErr bool
	statusExp time.Time
	dialog    *components.Dialog
}

// collectionLoadedMsg carries a freshly loaded snapshot.
type collectionLoadedMsg struct {
	items common.Items
	title string
}

// New creates a new application model.
func New(opts Options) Model {
	if opts.Config == nil {
		opts.Config = &config.Config{ConfirmSave: true}
	}
	if opts.Items == nil {
		opts.Items = collection.Empty[collection.Record]()
	}
	if opts.Keys.Quit.Keys() == nil {
		opts.Keys = DefaultKeyMap()
	}
	if opts.ListKeys.Select.Keys() == nil {
		opts.ListKeys = components.DefaultListKeyMap()
	}
	return Model{
		source:    opts.Source,
		cfg:       opts.Config,
		styles:    opts.Styles,
		keys:      opts.Keys,
		listKeys:  opts.ListKeys,
		log:       logging.OrDiscard(opts.Logger).With("component", "app"),
		activeTab: common.TabList,
		views:     opts.Views,
		items:     opts.Items,
		title:     opts.Title,
	}
}

// Init focuses the first tab.
func (m Model) Init() tea.Cmd {
	v, ok := m.views[m.activeTab]
	if !ok {
		return nil
	}
	return tea.Batch(v.Init(), v.Focus())
}

// Items returns the canonical collection.
func (m Model) Items() common.Items { return m.items }

// Dirty reports whether the collection has unsaved reorders.
func (m Model) Dirty() bool { return m.dirty }

// ActiveTab returns the visible tab.
func (m Model) ActiveTab() common.TabID { return m.activeTab }

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The dialog takes every key and click while it is up. Timers and
	// results still reach the views.
	if m.dialog != nil && m.dialog.Visible() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Quit) {
				return m, tea.Quit
			}
			d, cmd := m.dialog.Update(msg)
			m.dialog = &d
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentH := m.contentHeight()
		for _, v := range m.views {
			v.SetSize(m.width, contentH)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
		// Keys not handled globally are forwarded to the active view below.

	case common.MoveMsg:
		return m, m.applyMove(msg)

	case collectionLoadedMsg:
		m.items, m.title = msg.items, msg.title
		m.dirty = false
		m.log.Debug("collection loaded", "items", m.items.Len())
		return m, m.broadcast()

	case common.ReloadMsg:
		if c, ok := m.source.(*collection.CachedSource); ok {
			c.Invalidate()
		}
		return m, m.load()

	case common.SavedMsg:
		m.dirty = false
		return m.setStatus("saved "+filepath.Base(msg.Path), false, 3*time.Second), nil

	case common.ErrMsg:
		m.log.Warn("error", "err", msg.Err)
		return m.setStatus(msg.Err.Error(), true, 5*time.Second), nil

	case common.InfoMsg:
		return m.setStatus(msg.Text, false, 3*time.Second), nil

	case common.SwitchTabMsg:
		return m, m.switchTo(msg.Tab)

	case components.DialogResult:
		m.dialog = nil
		return m, m.handleDialog(msg)
	}

	// Forward unhandled messages to the active view.
	return m, m.forward(msg)
}

// handleKey runs the global bindings. Views that capture text input still
// give up ctrl+c and the tab keys.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	capture := false
	if v, ok := m.views[m.activeTab]; ok {
		capture = v.InputCapture()
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.NextTab):
		return m.cycleTab(1), true
	case key.Matches(msg, m.keys.PrevTab):
		return m.cycleTab(-1), true
	}
	if capture {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil, true
	case key.Matches(msg, m.keys.Back) && m.showHelp:
		m.showHelp = false
		return nil, true
	case key.Matches(msg, m.keys.Save):
		return m.requestSave(), true
	case key.Matches(msg, m.keys.Reload):
		return common.CmdReload, true
	case key.Matches(msg, m.keys.TabList):
		return m.switchTo(common.TabList), true
	case key.Matches(msg, m.keys.TabStrip):
		return m.switchTo(common.TabStrip), true
	case key.Matches(msg, m.keys.TabDropdown):
		return m.switchTo(common.TabDropdown), true
	case key.Matches(msg, m.keys.TabCombobox):
		return m.switchTo(common.TabCombobox), true
	}
	return nil, false
}

// forward hands msg to the active view.
func (m Model) forward(msg tea.Msg) tea.Cmd {
	v, ok := m.views[m.activeTab]
	if !ok {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.views[m.activeTab] = updated
	return cmd
}

// broadcast sends the current snapshot to every view.
func (m Model) broadcast() tea.Cmd {
	var cmds []tea.Cmd
	msg := common.CollectionMsg{Items: m.items, Title: m.title}
	for _, t := range common.AllTabs {
		v, ok := m.views[t.ID]
		if !ok {
			continue
		}
		updated, cmd := v.Update(msg)
		m.views[t.ID] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// applyMove reorders the canonical collection. To -1 means the end.
func (m *Model) applyMove(msg common.MoveMsg) tea.Cmd {
	to := msg.To
	if to < 0 {
		to = m.items.Len() - 1
	}
	if msg.From == to {
		return nil
	}
	next, err := m.items.Move(msg.From, to)
	if err != nil {
		return common.CmdErr(fmt.Errorf("reorder: %w", err))
	}
	m.log.Debug("moved", "from", msg.From, "to", to)
	m.items = next
	m.dirty = true
	return m.broadcast()
}

// load re-reads the source in the background.
func (m Model) load() tea.Cmd {
	src := m.source
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		doc, err := src.Load()
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		items, err := collection.ToCollection(doc)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return collectionLoadedMsg{items: items, title: doc.Title}
	}
}

// requestSave asks before writing, or asks for a path when there is no
// source yet.
func (m *Model) requestSave() tea.Cmd {
	if m.source == nil {
		d := components.NewInputDialog(m.styles, "Save as", "Write the collection to a .yaml, .toml, .json or .txt file.", "items.yaml", tagSaveAs)
		m.dialog = &d
		return nil
	}
	if !m.cfg.ConfirmSave {
		return m.save()
	}
	d := components.NewConfirmDialog(m.styles, "Save order",
		fmt.Sprintf("Write %d items to %s?", m.items.Len(), filepath.Base(m.source.Path())), tagSave)
	d.Accept, d.Reject = "Save", "Cancel"
	m.dialog = &d
	return nil
}

func (m *Model) handleDialog(res components.DialogResult) tea.Cmd {
	if !res.Confirmed {
		return nil
	}
	switch res.Tag {
	case tagSave:
		return m.save()
	case tagSaveAs:
		src, err := collection.NewFileSource(res.Value)
		if err != nil {
			return common.CmdErr(err)
		}
		m.source = src
		return m.save()
	}
	return nil
}

// save writes the current order back to the source.
func (m Model) save() tea.Cmd {
	src := m.source
	doc := collection.FromCollection(m.title, m.items)
	return func() tea.Msg {
		if err := src.Save(doc); err != nil {
			return common.ErrMsg{Err: fmt.Errorf("save collection: %w", err)}
		}
		return common.SavedMsg{Path: src.Path()}
	}
}

func (m Model) setStatus(text string, isErr bool, ttl time.Duration) Model {
	m.statusMsg = text
	m.statusErr = isErr
	m.statusExp = time.Now().Add(ttl)
	return m
}

// View renders the entire UI. It does no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	v, hasView := m.views[m.activeTab]

	if m.showHelp {
		sections := components.GlobalHelpEntries(m.listKeys)
		if hasView {
			sections["This tab"] = v.ShortHelp()
		}
		return components.RenderHelp(m.styles, "Keyboard Shortcuts", sections, m.width, m.height)
	}

	tabBar, _ := components.RenderTabs(m.styles, m.buildTabInfos(), m.width)

	content := ""
	var barData components.StatusBarData
	if hasView {
		content = v.View()
		barData = v.Status()
	}

	contentH := m.contentHeight()
	content = lipgloss.NewStyle().Width(m.width).Height(contentH).MaxHeight(contentH).Render(content)

	barData.Tab = common.TabName(m.activeTab)
	barData.Dirty = m.dirty
	if m.source != nil {
		barData.Source = m.source.Path()
	}
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		barData.Message = m.statusMsg
		barData.IsError = m.statusErr
	}
	statusBar := components.RenderStatusBar(m.styles, barData, m.width)

	screen := lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)

	if m.dialog != nil && m.dialog.Visible() {
		screen = ui.PlaceCentre(m.width, m.height, m.dialog.View())
	}
	return screen
}

func (m Model) contentHeight() int {
	// height - tab bar - status bar - bottom padding
	return max(1, m.height-components.TabBarRows-2)
}

func (m *Model) cycleTab(delta int) tea.Cmd {
	n := len(common.AllTabs)
	next := (m.tabIndex() + delta + n) % n
	return m.switchTo(common.AllTabs[next].ID)
}

// tabIndex returns the index of the active tab in AllTabs.
func (m Model) tabIndex() int {
	for i, t := range common.AllTabs {
		if t.ID == m.activeTab {
			return i
		}
	}
	return 0
}

// switchTo blurs the current view and focuses the target. Blurring cancels
// any drag in flight on the old tab.
func (m *Model) switchTo(tab common.TabID) tea.Cmd {
	if tab == m.activeTab {
		return nil
	}
	var cmds []tea.Cmd
	if v, ok := m.views[m.activeTab]; ok {
		cmds = append(cmds, v.Blur())
	}
	m.activeTab = tab
	m.log.Debug("tab", "name", common.TabName(tab))
	if v, ok := m.views[tab]; ok {
		cmds = append(cmds, v.Init(), v.Focus())
	}
	return tea.Batch(cmds...)
}

// handleMouse processes tab clicks and wheel in the tab bar and forwards
// everything else with content-relative coordinates. Motion and release
// always reach the view so a drag can leave the content area.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	inTabBar := msg.Y < components.TabBarRows

	switch {
	case tea.MouseEvent(msg).IsWheel() && inTabBar:
		if msg.Button == tea.MouseButtonWheelUp {
			return m, m.cycleTab(-1)
		}
		return m, m.cycleTab(1)

	case msg.Action == tea.MouseActionPress && inTabBar:
		if msg.Button != tea.MouseButtonLeft || msg.Y != 0 {
			return m, nil
		}
		_, zones := components.RenderTabs(m.styles, m.buildTabInfos(), m.width)
		if i := components.TabAt(zones, msg.X); i >= 0 {
			return m, m.switchTo(common.AllTabs[i].ID)
		}
		return m, nil
	}

	msg.Y -= components.TabBarRows
	return m, m.forward(msg)
}

func (m Model) buildTabInfos() []components.TabInfo {
	infos := make([]components.TabInfo, len(common.AllTabs))
	for i, t := range common.AllTabs {
		infos[i] = components.TabInfo{
			Name:     t.Name,
			Icon:     t.Icon,
			Shortcut: t.Shortcut,
			Active:   t.ID == m.activeTab,
			Group:    t.Group,
		}
	}
	return infos
}
