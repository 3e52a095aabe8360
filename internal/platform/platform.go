// Package platform declares the OS capability boundary the quickboard core
// is written against. Real window-system, hotkey and clipboard primitives
// live behind these interfaces; the core never talks to the OS directly.
package platform

import "errors"

// ErrAlreadyRegistered is returned by Hotkeys.Register when the OS reports
// the combo as taken, typically left behind by a crashed prior instance.
var ErrAlreadyRegistered = errors.New("hotkey already registered")

// WindowOptions describes the overlay surface configuration
type WindowOptions struct {
	Width       int
	Height      int
	Decorations bool
	Resizable   bool
	AlwaysOnTop bool
	SkipTaskbar bool
	Visible     bool
}

// WindowSystem creates and manipulates native overlay surfaces by label.
// Create is asynchronous: the ack arrives as a WindowCreatedEvent or
// WindowCreateFailedEvent on the event bus, never as a return value.
type WindowSystem interface {
	Create(label string, opts WindowOptions)
	Show(label string) error
	Hide(label string) error
	Center(label string) error
	Focus(label string) error
}

// Hotkeys registers global key combinations
type Hotkeys interface {
	Register(combo string, handler func()) error
	Unregister(combo string) error
	IsRegistered(combo string) (bool, error)
}

// Clipboard writes payloads to the system clipboard
type Clipboard interface {
	WriteText(text string) error
	WriteImage(rgba []byte, width, height int) error
}
