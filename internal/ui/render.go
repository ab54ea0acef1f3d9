package ui

import (
	"fmt"
	"strconv"
	"time"

	"aoc2024/internal/puzzle"
	"aoc2024/internal/store"
)

// Results renders a table of run results followed by a summary line.
func Results(styles Styles, results []puzzle.Result) string {
	t := NewSimpleTable("Results", "Day", "Part", "Title", "Answer", "Time")
	failed := 0
	for _, r := range results {
		part := r.Job.Part.String()
		if r.Job.Label != "" {
			part += " (" + r.Job.Label + ")"
		}
		answer := ""
		switch {
		case r.Err != nil:
			failed++
			answer = styles.Error.Render("error: " + r.Err.Error())
		case r.Answer != nil:
			answer = r.Answer.String()
		}
		t.AddRow(strconv.Itoa(r.Job.Day), part, r.Title, answer, FormatDuration(r.Duration))
	}

	out := t.View(styles)
	if len(results) == 0 {
		return out
	}
	summary := fmt.Sprintf("%d/%d solved", len(results)-failed, len(results))
	if failed == 0 {
		out += styles.Success.Render(summary) + "\n"
	} else {
		out += styles.Error.Render(summary) + "\n"
	}
	return out
}

// Days renders the registered days with a star per implemented part.
func Days(styles Styles, reg *puzzle.Registry) string {
	t := NewSimpleTable("Advent of Code 2024", "Day", "Title", "Parts")
	for _, day := range reg.Days() {
		s, err := reg.Get(day)
		if err != nil {
			continue
		}
		stars := ""
		for _, p := range puzzle.Parts {
			if s.Has(p) {
				stars += "*"
			}
		}
		t.AddRow(strconv.Itoa(day), s.Title(), styles.Star.Render(stars))
	}
	return t.View(styles)
}

// History renders recorded runs.
func History(styles Styles, entries []store.Entry) string {
	t := NewSimpleTable("History", "When", "Day", "Part", "Answer", "Time")
	for _, e := range entries {
		answer := e.Answer
		if !e.OK() {
			answer = styles.Error.Render("error: " + e.Err)
		}
		t.AddRow(e.CreatedAt.Local().Format(time.DateTime), strconv.Itoa(e.Day), e.Part.String(), answer, FormatDuration(e.Duration))
	}
	return t.View(styles)
}

// FormatDuration rounds d for display.
func FormatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "-"
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}
