package widget

import (
	"fmt"
	"strings"

	"combobox/internal/combobox"
	"combobox/internal/domain"
)

// Tag is a selected item shown as a removable chip
type Tag struct {
	Item domain.Item
}

// Row is one dropdown entry
type Row struct {
	Item        domain.Item
	Highlighted bool
}

// ViewModel is everything the renderer needs, derived from the state
type ViewModel struct {
	Tags         []Tag
	Input        string
	Placeholder  string // empty once something is selected
	ShowDropdown bool
	Rows         []Row
	ShowKeywords bool
	Loading      bool
	Focused      bool
}

// BuildViewModel maps state to a ViewModel. It does not mutate s.
func BuildViewModel(s *combobox.State, placeholder string, showKeywords, focused bool) ViewModel {
	vm := ViewModel{
		Input:        s.Query(),
		ShowKeywords: showKeywords,
		Loading:      s.Loading(),
		Focused:      focused,
	}

	selected := s.Selected()
	for _, item := range selected {
		vm.Tags = append(vm.Tags, Tag{Item: item})
	}
	if len(selected) == 0 {
		vm.Placeholder = placeholder
	}

	filtered := s.Filtered()
	vm.ShowDropdown = s.IsOpen() && len(filtered) > 0
	if vm.ShowDropdown {
		for i, item := range filtered {
			vm.Rows = append(vm.Rows, Row{Item: item, Highlighted: i == s.Highlighted()})
		}
	}

	return vm
}

// String renders the view model as plain text, used for snapshots and debugging
func (vm ViewModel) String() string {
	var b strings.Builder

	for _, tag := range vm.Tags {
		fmt.Fprintf(&b, "[%s ×] ", tag.Item.Name)
	}
	switch {
	case vm.Input != "":
		fmt.Fprintf(&b, "> %s", vm.Input)
	case vm.Placeholder != "":
		fmt.Fprintf(&b, "> (%s)", vm.Placeholder)
	default:
		b.WriteString(">")
	}
	if vm.Focused {
		b.WriteString("_")
	}
	if vm.Loading {
		b.WriteString(" …")
	}
	b.WriteString("\n")

	if !vm.ShowDropdown {
		return b.String()
	}

	for _, row := range vm.Rows {
		marker := "  "
		if row.Highlighted {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(row.Item.Name)
		if vm.ShowKeywords && len(row.Item.Keywords) > 0 {
			fmt.Fprintf(&b, "  (%s)", row.Item.KeywordList())
		}
		b.WriteString("\n")
	}

	return b.String()
}
