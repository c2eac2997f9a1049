package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/volatiletech/null/v8"
)

// renderTable prints one aligned table; rows come pre-filtered.
func renderTable(out io.Writer, header []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
	if len(rows) == 0 {
		fmt.Fprintln(out, "(no results)")
	}
}

// matchesSearch is the live-search predicate: case-insensitive substring
// over the given fields; an empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func orDash(s null.String) string {
	if s.Valid && s.String != "" {
		return s.String
	}
	return "-"
}

func intOrDash(i null.Int) string {
	if i.Valid {
		return fmt.Sprintf("%d", i.Int)
	}
	return "-"
}
