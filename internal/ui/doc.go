// Package ui hosts the debug menu in a Bubble Tea program.
//
// The Model redraws on a frame ticker. Each frame it commits pending
// navigation and refreshes the filter through the engine, then runs one
// immediate-mode pass (internal/imgui) that draws the window chrome and the
// current node's body. Input gathered between frames (clicks, activation,
// slider nudges) is fed to that pass, so widgets report interaction as
// return values of the calls that draw them.
//
// Message flow:
//   - Model.Update routes every tea.Msg through a typed handler registry.
//   - Keys edit the root filter, move keyboard focus or navigate. Mouse
//     presses become the click of the next pass and may start a window drag
//     (title bar) or a content drag (body, breadcrumb strip).
//   - Sampler events are applied to the runtime and terminal stores by the
//     dispatcher, which the sample panels read while drawing.
//   - Toolbar actions such as Copy run on the command bus and report back
//     with a command.ResultMsg shown in the status line.
//
// The window is composited over a background layer holding the animated
// scene and the canvas callbacks, which keep drawing while the menu is
// hidden.
package ui
