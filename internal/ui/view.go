package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const itemIndicator = "▌"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text is already styled; truncate ANSI-aware and print as is
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render draws the header, the candidate window, the optional preview and
// footer, and the bottom bar with the status line and the filter prompt.
func (m *Model) Render() string {
	lines := make([]styledLine, 0, 16)
	if header := m.header(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	rows, selected, ok := m.visibleChoices()
	switch {
	case !ok && m.nav.Filter() != "":
		lines = append(lines, styledLine{text: fmt.Sprintf("No matches for %q", m.nav.Filter()), style: styles.Info})
	case !ok:
		lines = append(lines, styledLine{text: "(no entries)", style: styles.Info})
	default:
		for i, row := range rows {
			lines = append(lines, m.buildItemLine(row, i == selected))
		}
	}
	if preview := m.activePreview(); preview != nil {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Preview: " + preview.label, style: styles.PreviewTitle})
		if preview.err != "" {
			lines = append(lines, styledLine{text: preview.err, style: styles.PreviewError})
		}
		for _, line := range preview.lines {
			lines = append(lines, styledLine{text: line, style: styles.PreviewBody})
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.keys.footer(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.status != "" {
		statusLine = styledLine{text: m.status, style: styles.Error}
	}
	bottom := applyWidth([]styledLine{
		statusLine,
		{text: m.filterPrompt(), raw: true},
	}, m.width)
	return renderLines(append(lines, bottom...))
}

// header shows where the user is: the title followed by every key picked so
// far. It is empty at an untitled root.
func (m *Model) header() string {
	frames := m.nav.History().Frames()
	title := strings.TrimSpace(m.title)
	if title == "" && len(frames) == 0 {
		return ""
	}
	if title == "" {
		title = defaultTitle
	}
	return strings.Join(append([]string{title}, frames...), headerSeparator)
}

func (m *Model) buildItemLine(label string, selected bool) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	text := itemIndicator + " " + label
	if m.width > 0 {
		if pad := m.width - runewidth.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// maxVisibleItems returns how many candidate rows fit, or -1 when the height
// is unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // status line + prompt
	if m.header() != "" {
		used++
	}
	if m.showFooter {
		used += 2
	}
	if preview := m.activePreview(); preview != nil {
		used += 2 + len(preview.lines)
		if preview.err != "" {
			used++
		}
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			line.text = ansi.Truncate(line.text, width, "…")
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
