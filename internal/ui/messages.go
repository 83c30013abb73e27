package ui

import "combobox/internal/eventbus"

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals that an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager has exited
type resumeRenderingMsg struct{}

// clearStatusMsg clears the status line if it still shows status seq
type clearStatusMsg struct {
	seq int
}
