package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"combobox/internal/domain"
)

// HitKind identifies what a click landed on
type HitKind int

const (
	HitField HitKind = iota
	HitTagRemove
	HitRow
)

// Hit is a clickable region in widget-relative cells. X1 is exclusive.
type Hit struct {
	Kind HitKind
	Line int
	X0   int
	X1   int
	Item domain.Item
}

// Contains reports whether the cell (x, y) lies in the region
func (h Hit) Contains(x, y int) bool {
	return y == h.Line && x >= h.X0 && x < h.X1
}

const (
	fieldLines    = 3 // top border, content, bottom border
	contentOffset = 2 // border + padding
	removeGlyph   = "×"
)

// Render draws vm and returns the clickable regions. inputView is the text
// field as drawn by the textinput; when empty the query or placeholder is
// drawn instead.
func Render(vm ViewModel, inputView string, styles *Styles) (string, []Hit) {
	var hits []Hit

	var parts []string
	x := contentOffset
	for _, tag := range vm.Tags {
		chip := styles.Tag.Render(tag.Item.Name + " " + removeGlyph)
		w := lipgloss.Width(chip)
		// Padding right of the glyph plus the glyph and the space before it
		hits = append(hits, Hit{Kind: HitTagRemove, Line: 1, X0: x + w - 3, X1: x + w, Item: tag.Item})
		parts = append(parts, chip)
		x += w + 1
	}

	if inputView == "" {
		if vm.Input != "" {
			inputView = vm.Input
		} else {
			inputView = styles.Placeholder.Render(vm.Placeholder)
		}
	}
	parts = append(parts, inputView)
	if vm.Loading {
		parts = append(parts, styles.Loading.Render("…"))
	}

	fieldStyle := styles.Field
	if vm.Focused {
		fieldStyle = styles.FieldFocused
	}
	field := fieldStyle.Render(strings.Join(parts, " "))
	fieldWidth := lipgloss.Width(field)

	for line := 0; line < fieldLines; line++ {
		hits = append(hits, Hit{Kind: HitField, Line: line, X0: 0, X1: fieldWidth})
	}

	if !vm.ShowDropdown {
		return field, hits
	}

	innerWidth := fieldWidth - 2
	rows := make([]string, 0, len(vm.Rows))
	for _, row := range vm.Rows {
		rows = append(rows, renderRow(row, vm.ShowKeywords, innerWidth, styles))
	}
	dropdown := styles.Dropdown.Render(strings.Join(rows, "\n"))

	// Rows sit below the dropdown's top border
	dropdownWidth := lipgloss.Width(dropdown)
	for i, row := range vm.Rows {
		hits = append(hits, Hit{Kind: HitRow, Line: fieldLines + 1 + i, X0: 0, X1: dropdownWidth, Item: row.Item})
	}

	return lipgloss.JoinVertical(lipgloss.Left, field, dropdown), hits
}

func renderRow(row Row, showKeywords bool, width int, styles *Styles) string {
	marker := "  "
	style := styles.Row
	if row.Highlighted {
		marker = "▌ "
		style = styles.RowHighlight
	}

	line := marker + row.Item.Name
	if showKeywords && len(row.Item.Keywords) > 0 {
		line += "  " + styles.Keywords.Render(row.Item.KeywordList())
	}

	pad := width - lipgloss.Width(line)
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return style.Render(line)
}

// HitAt returns the region under (x, y). Tag and row regions take
// precedence over the field that contains them.
func HitAt(hits []Hit, x, y int) (Hit, bool) {
	var field *Hit
	for i := range hits {
		if !hits[i].Contains(x, y) {
			continue
		}
		if hits[i].Kind != HitField {
			return hits[i], true
		}
		if field == nil {
			field = &hits[i]
		}
	}
	if field != nil {
		return *field, true
	}
	return Hit{}, false
}
