package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerClosedMsg is sent when the pager exits
type pagerClosedMsg struct {
	err error
}

// ovPager runs the ov pager over a text. It implements tea.ExecCommand so
// bubbletea releases and restores the terminal around it.
type ovPager struct {
	content string
}

func (p *ovPager) SetStdin(io.Reader) {}
func (p *ovPager) SetStdout(io.Writer) {}
func (p *ovPager) SetStderr(io.Writer) {}

// Run shows the content until the user quits the pager
func (p *ovPager) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return fmt.Errorf("failed to start pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showInPager returns a command that pages content with ov
func showInPager(content string) tea.Cmd {
	return tea.Exec(&ovPager{content: content}, func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}
