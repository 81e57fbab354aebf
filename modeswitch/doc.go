// Package modeswitch renders a [selector.List] as a one-line tab bar for
// Bubble Tea programs and changes the current item from the keyboard.
//
// # Usage
//
//	modes := selector.MustNew("Normal", "Insert", "Visual")
//	m := modeswitch.New(modes, modeswitch.WithSeparator(" | "))
//	p := tea.NewProgram(m)
//
// Embed the model in a parent model by forwarding messages to
// [Model.Update] and placing [Model.View] in the parent's view. The
// parent reads the selection back through [Model.Current].
//
// # Keys
//
// By default left/h/shift+tab select the previous item, right/l/tab the
// next one (both wrap around) and the digits 1–9 jump directly to an item.
// Override the bindings with [WithKeyMap].
//
// The model never emits messages of its own; it only mutates the wrapped
// list.
package modeswitch
