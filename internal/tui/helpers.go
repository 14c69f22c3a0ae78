package tui

import "fmt"

// formatHours formats hours as "Xh Ym"
func formatHours(hours float64) string {
	h := int(hours)
	m := int((hours-float64(h))*60 + 0.5)
	if m == 60 {
		h++
		m = 0
	}
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
