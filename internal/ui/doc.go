// Package ui contains the Bubble Tea program that drives a navigator.Navigator
// from the keyboard.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes).
//   - Navigation helpers (navigation.go) turn key bindings into navigator
//     intents: descend, ascend, cursor moves. Filter editing and the prompt
//     live in input.go.
//   - Reaching a leaf stores the breadcrumb as the result and quits; ctrl+c,
//     or esc at the root, quits without one.
//
// State ownership: the navigator owns the filter, cursor and history. The
// model only keeps presentation state such as the viewport offset per depth,
// the terminal size and the outcome of the session.
package ui
