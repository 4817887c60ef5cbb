package cli

import (
	"io"
	"os"

	"github.com/julianstephens/routinely/internal/config"
	"github.com/julianstephens/routinely/internal/store"
)

// Context is handed to every command's Run method.
type Context struct {
	Store      *store.TaskStore
	Config     *config.Config
	ConfigPath string

	// Out receives command output. Nil means stdout.
	Out io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
