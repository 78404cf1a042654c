package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the storefront key bindings. Keys not bound here
// are routed to the focused component.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default storefront key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeBrowse: defaultBrowseBindings(),
			ModeSearch: defaultSearchBindings(),
			ModeHelp:   defaultHelpBindings(),
		},
	}
}

func defaultBrowseBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeBrowse,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyTab, Command: CmdNextPage, Description: "Next page", Category: "Navigation"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevPage, Description: "Previous page", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'm', Command: CmdToggleDrawer, Description: "Toggle navigation drawer", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'f', Command: CmdCycleFocus, Description: "Cycle focus", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdFocusSearch, Description: "Search products", Category: "Listing"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Session"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Session"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Session"},
		},
	}
}

func defaultSearchBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeSearch,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdExitSearch, Description: "Leave search", Category: "Search"},
			{KeyType: tea.KeyTab, Command: CmdExitSearch, Description: "Leave search", Category: "Search"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Session"},
		},
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdCloseHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdCloseHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdCloseHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdScrollDown, Description: "Scroll down", Category: "Help"},
			{KeyType: tea.KeyDown, Command: CmdScrollDown, Description: "Scroll down", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdScrollUp, Description: "Scroll up", Category: "Help"},
			{KeyType: tea.KeyUp, Command: CmdScrollUp, Description: "Scroll up", Category: "Help"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Session"},
		},
	}
}
