// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/hyperbolic/hyperbolic"
	"github.com/katalvlaran/hyperbolic/matrix"
)

var (
	errNoPoints = errors.New("at least one --point is required")
	errNoSource = errors.New("--from is required")
)

// parsePoint reads "x1,x2,...,xn" into a vector of finite coordinates.
func parsePoint(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: coordinate %d: %w", s, i, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("point %q: coordinate %d: %w", s, i, matrix.ErrNaNInf)
		}
		out[i] = v
	}

	return out, nil
}

// parsePoints reads every --point value; shape checks are left to the batch constructors.
func parsePoints(values []string) ([][]float64, error) {
	if len(values) == 0 {
		return nil, errNoPoints
	}
	rows := make([][]float64, len(values))
	for i, s := range values {
		p, err := parsePoint(s)
		if err != nil {
			return nil, err
		}
		rows[i] = p
	}

	return rows, nil
}

// hyperboloidBatch builds a hyperboloid batch from rows. With ball set, rows
// are Poincaré points that are pulled back and lifted first.
func (a *app) hyperboloidBatch(rows [][]float64, ball bool) (*hyperbolic.HyperboloidBatch, error) {
	if !ball {
		return hyperbolic.NewHyperboloidBatch(rows)
	}
	p, err := hyperbolic.NewPoincareBatch(rows)
	if err != nil {
		return nil, err
	}
	safe, err := hyperbolic.Pullback(p, a.opts...)
	if err != nil {
		return nil, err
	}

	return hyperbolic.ToHyperboloid(safe)
}

// emit writes payload as JSON under --json, a table under --table,
// otherwise rows as plain text.
func (a *app) emit(w io.Writer, payload any, header []string, rows [][]float64) error {
	switch {
	case a.json:
		return writeJSON(w, payload)
	case a.table:
		return writeTable(w, header, rows)
	default:
		return writeRows(w, rows)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// writeRows prints one space-separated row per line in shortest round-trip form.
func writeRows(w io.Writer, rows [][]float64) error {
	var sb strings.Builder
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// denseRows copies a result matrix into [][]float64 for output.
func denseRows(m *matrix.Dense) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = append([]float64(nil), m.RawRow(i)...)
	}

	return out
}
