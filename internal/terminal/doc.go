// Package terminal connects the tui runtime to a real terminal.
//
// A bubbletea program owns raw mode, the alternate screen, input decoding and
// suspend/resume. Terminal implements tui.Renderer by sending finished frames
// to that program, and tui.EventSource by queueing the key, mouse, resize and
// resume messages it receives, alongside tick and render timers.
package terminal
