package editor

import (
	"log"

	"github.com/iw2rmb/piecevi/internal/cellwidth"
	"github.com/iw2rmb/piecevi/internal/file"
)

// Config configures a Session and the Model wrapping it.
type Config struct {
	// Initial document text and the path it is written back to.
	Text string
	Path string

	// Store persists the document on write. Defaults to file.Disk.
	Store Store

	// Rendering options. A zero Style renders plain text.
	ShowLineNums bool
	Style        Style
	TabWidth     int

	KeyMap KeyMap

	// OnChange is called after an action changed the document.
	OnChange func(ChangeEvent)

	// Logger defaults to log.Default().
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Store == nil {
		c.Store = file.Disk{}
	}
	if c.TabWidth <= 0 {
		c.TabWidth = cellwidth.DefaultTabWidth
	}
	if len(c.KeyMap.Escape.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}
