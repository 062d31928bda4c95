// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// tableStyles holds the cell styles for --table output.
type tableStyles struct {
	Header lipgloss.Style
	Index  lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// newTableStyles builds the style set on a renderer bound to w, so colors
// are only emitted when w is a terminal that supports them.
func newTableStyles(r *lipgloss.Renderer) tableStyles {
	return tableStyles{
		Header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213")).
			Padding(0, 1),
		Index: r.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		Cell: r.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right),
		Border: r.NewStyle().
			Foreground(lipgloss.Color("238")),
	}
}

// writeTable renders rows under header with a leading row-index column.
func writeTable(w io.Writer, header []string, rows [][]float64) error {
	s := newTableStyles(lipgloss.NewRenderer(w))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		Headers(append([]string{"#"}, header...)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.Header
			case col == 0:
				return s.Index
			default:
				return s.Cell
			}
		})

	for i, row := range rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, strconv.Itoa(i))
		for _, v := range row {
			cells = append(cells, strconv.FormatFloat(v, 'g', 8, 64))
		}
		t.Row(cells...)
	}

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

// coordHeader names ball coordinates x0..x{d-1}, plus t when timelike is set.
func coordHeader(d int, timelike bool) []string {
	h := make([]string, 0, d+1)
	for j := 0; j < d; j++ {
		h = append(h, "x"+strconv.Itoa(j))
	}
	if timelike {
		h = append(h, "t")
	}

	return h
}

// indexHeader names matrix columns prefix0..prefix{n-1}.
func indexHeader(prefix string, n int) []string {
	h := make([]string, n)
	for j := range h {
		h[j] = prefix + strconv.Itoa(j)
	}

	return h
}
