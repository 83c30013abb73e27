package widget

import "combobox/internal/domain"

// itemsLoadedMsg carries the result of a source search
type itemsLoadedMsg struct {
	widgetID string
	seq      uint64
	query    string
	items    []domain.Item
}

// searchFailedMsg reports a failed source search
type searchFailedMsg struct {
	widgetID string
	seq      uint64
	err      error
}
