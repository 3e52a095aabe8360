// Package terminal is the development adapter for the platform
// capabilities: the overlay surface is the Bubble Tea screen, the "global"
// hotkey is an in-terminal key, and clipboard text goes through the system
// clipboard. Real OS adapters (Tauri, win32, X11) plug in behind the same
// interfaces.
package terminal

import (
	"fmt"
	"log"
	"sync"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"quickboard/internal/domain"
	"quickboard/internal/eventbus"
	"quickboard/internal/platform"
)

// Messages sent to the Bubble Tea program by the window system

type ShowMsg struct{ Label string }
type HideMsg struct{ Label string }
type FocusMsg struct{ Label string }

// Adapter implements platform.WindowSystem, platform.Hotkeys and
// platform.Clipboard against a running Bubble Tea program.
type Adapter struct {
	mu      sync.Mutex
	bus     eventbus.EventBus
	program *tea.Program
	created map[string]bool
	hotkeys map[string]func()

	lastImageW, lastImageH int
	lastImageBytes         int
}

// New creates a terminal adapter
func New(bus eventbus.EventBus) *Adapter {
	return &Adapter{
		bus:     bus,
		created: make(map[string]bool),
		hotkeys: make(map[string]func()),
	}
}

// SetProgram attaches the Bubble Tea program once it exists
func (a *Adapter) SetProgram(p *tea.Program) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.program = p
}

// send delivers a message to the program without blocking the caller.
// Program.Send blocks until the event loop picks the message up, and window
// calls arrive from inside Update (the activation key and esc both land
// here), where a synchronous Send would wait on the very loop that is
// waiting on us.
func (a *Adapter) send(msg tea.Msg) error {
	a.mu.Lock()
	p := a.program
	a.mu.Unlock()
	if p == nil {
		return fmt.Errorf("terminal program not running")
	}
	go p.Send(msg)
	return nil
}

// Create marks the labelled surface as created and acknowledges via the
// event bus. The terminal surface needs no native allocation.
func (a *Adapter) Create(label string, opts platform.WindowOptions) {
	a.mu.Lock()
	a.created[label] = true
	a.mu.Unlock()

	log.Printf("terminal: created surface %q (%dx%d)", label, opts.Width, opts.Height)
	a.bus.Publish(domain.WindowCreatedEvent{Label: label})
}

// Show makes the overlay visible
func (a *Adapter) Show(label string) error {
	return a.send(ShowMsg{Label: label})
}

// Hide hides the overlay
func (a *Adapter) Hide(label string) error {
	return a.send(HideMsg{Label: label})
}

// Center is a no-op on a terminal; the overlay always fills the screen
func (a *Adapter) Center(label string) error {
	return nil
}

// Focus directs key input to the overlay's query box
func (a *Adapter) Focus(label string) error {
	return a.send(FocusMsg{Label: label})
}

// Register stores a handler for the combo
func (a *Adapter) Register(combo string, handler func()) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.hotkeys[combo]; ok {
		return platform.ErrAlreadyRegistered
	}
	a.hotkeys[combo] = handler
	return nil
}

// Unregister removes the combo's handler
func (a *Adapter) Unregister(combo string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.hotkeys, combo)
	return nil
}

// IsRegistered reports whether the combo has a handler
func (a *Adapter) IsRegistered(combo string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.hotkeys[combo]
	return ok, nil
}

// Trigger fires the combo's handler. The UI calls this when the in-terminal
// activation key is pressed.
func (a *Adapter) Trigger(combo string) {
	a.mu.Lock()
	handler := a.hotkeys[combo]
	a.mu.Unlock()
	if handler != nil {
		handler()
	}
}

// WriteText writes plain text to the system clipboard
func (a *Adapter) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// WriteImage has no terminal-portable clipboard path; the decoded pixels
// are accepted and recorded so the commit flow still completes.
func (a *Adapter) WriteImage(rgba []byte, width, height int) error {
	a.mu.Lock()
	a.lastImageW, a.lastImageH = width, height
	a.lastImageBytes = len(rgba)
	a.mu.Unlock()

	log.Printf("terminal: received %dx%d image (%d bytes), no terminal clipboard target", width, height, len(rgba))
	return nil
}
