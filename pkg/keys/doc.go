// Package keys classifies raw keyboard input into the small closed set of
// events a formatter reacts to.
//
// Hosts translate whatever their toolkit delivers (DOM-style key codes, a
// terminal key message, a scripted sequence such as "555<BS><Left>") into an
// Event once, at the boundary. Everything downstream switches on Event.Kind
// and never looks at platform key codes again.
package keys
