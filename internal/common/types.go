package common

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/ui/components"
)

// Items is the collection every demo tab shows.
type Items = *collection.Collection[collection.Record]

// ── Tab identifiers ─────────────────────────────────────────────────────────

// TabID identifies which view/tab is active.
type TabID int

const (
	TabList TabID = iota
	TabStrip
	TabDropdown
	TabCombobox
)

// TabMeta describes a tab for display purposes.
type TabMeta struct {
	ID       TabID
	Name     string // Display name shown in the tab bar.
	Icon     string // Unicode icon (nerdfont-free, works in all terminals).
	Shortcut string // Alt+key shortcut hint.
	Group    string // Logical group: "lists" or "pickers".
}

// AllTabs is the ordered list of all tabs.
var AllTabs = []TabMeta{
	{TabList, "List", "☰", "1", "lists"},
	{TabStrip, "Strip", "⇆", "2", "lists"},

	{TabDropdown, "Dropdown", "▾", "3", "pickers"},
	{TabCombobox, "Combobox", "⌕", "4", "pickers"},
}

// TabName returns the display name of id.
func TabName(id TabID) string {
	for _, t := range AllTabs {
		if t.ID == id {
			return t.Name
		}
	}
	return ""
}

// ── Custom messages ─────────────────────────────────────────────────────────

// CollectionMsg replaces the collection in every view.
type CollectionMsg struct {
	Items Items
	Title string
}

// MoveMsg asks the app to move the item at From to To in the shared
// collection. To is -1 for "move to the end".
type MoveMsg struct {
	From int
	To   int
}

// ReloadMsg asks the app to re-read the collection source.
type ReloadMsg struct{}

// SavedMsg reports that the collection was written back to its source.
type SavedMsg struct{ Path string }

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// SwitchTabMsg requests a tab switch.
type SwitchTabMsg struct{ Tab TabID }

// CmdReload returns a ReloadMsg (use as return from tea.Cmd).
func CmdReload() tea.Msg { return ReloadMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// ── View interface ──────────────────────────────────────────────────────────

// View is the interface every tab view must implement.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	ShortHelp() []components.HelpEntry

	// Focus and Blur are called when the tab becomes active or inactive.
	Focus() tea.Cmd
	Blur() tea.Cmd

	// Status fills the view's part of the status bar: strategy, counts,
	// drag state and detail. The app adds the rest.
	Status() components.StatusBarData

	// InputCapture returns true when the view is in a text-input mode and
	// wants every key, including the ones the app binds globally.
	InputCapture() bool
}
