// Package components holds the dashboard widgets composed by tui.App.
//
// Header owns the active tab. DataTable owns the rows, the filter box and the
// background refresh; it is the only component that starts work off the event
// loop. TopLeft and TopRight read the shared dataset and its statistics when
// DataLoaded or TabChange passes through, and HelpBar mirrors the key table
// for the current mode.
package components
