// Package tui is the dashboard runtime: an action-driven event loop that
// composes independent components over a shared frame.
//
// # Event loop
//
// App.Run repeats one cycle per terminal event:
//
//  1. Wait for exactly one Event from the EventSource.
//  2. Translate it into actions. Lifecycle events map directly; keys go
//     through the keybind table for the current mode.
//  3. Offer the raw event to every EventHandler.
//  4. Drain the queue breadth-first. Each action first takes its App-level
//     effect (mode switch, quit, suspend, redraw, export) and is then passed
//     to every component's Update. Returned actions join the back of the
//     queue, behind anything background work has sent.
//
// Waiting for the next event is the only place the loop blocks. Background
// work reaches the loop by calling Send on the Sender handed out through
// ActionHandlerRegistrar.
//
// # Components
//
// A Component only has to Update and Draw. Everything else is an optional
// capability discovered through interface checks: Initializer,
// ActionHandlerRegistrar, EventHandler, Reporter and Shutdowner.
//
// # Drawing
//
// A Frame is a grid of styled text lines. Components overlay blocks into
// regions computed by Split. A component that fails or panics while drawing
// ends the session with an Error action instead of corrupting the screen.
package tui
