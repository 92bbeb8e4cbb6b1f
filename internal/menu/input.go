package menu

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// prompt prints a label and reads one trimmed line. It returns false when
// input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label+" ")
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptRequired re-asks until a non-blank value is entered.
func (m *Menu) promptRequired(label string) (string, bool) {
	for {
		value, ok := m.prompt(label)
		if !ok {
			return "", false
		}
		if value != "" {
			return value, true
		}
		m.warn("A value is required.")
	}
}

// promptFloat re-asks until a non-negative number is entered. An empty
// answer uses the fallback.
func (m *Menu) promptFloat(label string, fallback float64) (float64, bool) {
	for {
		value, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		if value == "" {
			return fallback, true
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			m.warn("Enter a non-negative number.")
			continue
		}
		return f, true
	}
}

// promptDate reads an optional YYYY-MM-DD date. An empty answer returns
// nil.
func (m *Menu) promptDate(label string) (*time.Time, bool) {
	for {
		value, ok := m.prompt(label)
		if !ok {
			return nil, false
		}
		if value == "" {
			return nil, true
		}
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			m.warn("Enter a date as YYYY-MM-DD.")
			continue
		}
		return &t, true
	}
}

// promptChoice reads a menu selection between 1 and max, or 0 for back.
func (m *Menu) promptChoice(max int) (int, bool) {
	for {
		value, ok := m.prompt("Select an option:")
		if !ok {
			return 0, false
		}
		if value == "back" || value == "exit" {
			return 0, true
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > max {
			m.warn(fmt.Sprintf("Enter a number between 0 and %d.", max))
			continue
		}
		return n, true
	}
}
