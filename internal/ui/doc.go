// Package ui holds the lipgloss styling shared by the dashboard and by the
// plain output printed around it.
//
// Two kinds of output live here:
//
//   - Theme: the styles dashboard components draw with, derived from the
//     configured colors.
//   - Result: success and failure boxes printed to the normal terminal, for
//     example when the data source cannot be reached at startup or the
//     session ended on an error. Failure boxes carry troubleshooting tips.
//
// Result boxes size themselves to the terminal width, clamped between
// MinTerminalWidth and MaxContentWidth.
package ui
