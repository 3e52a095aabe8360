package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// ItemPager shows an item's full stored text in the ov pager
type ItemPager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewItemPager creates a new pager
func NewItemPager() *ItemPager {
	return &ItemPager{}
}

// SetProgram attaches the Bubble Tea program once it exists
func (p *ItemPager) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowText pages the given content, releasing the terminal for the
// duration and restoring it afterwards.
func (p *ItemPager) ShowText(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write pager content on exit, it would clobber our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
