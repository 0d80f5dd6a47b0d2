package entities

import (
	"fmt"
	"io"
	"os"
)

// Option configures an entity at construction time
type Option func(*console)

// WithOutput redirects the status messages of an entity, which go to standard output by default
func WithOutput(w io.Writer) Option {
	return func(c *console) {
		if w != nil {
			c.out = w
		}
	}
}

type console struct {
	out io.Writer
}

func newConsole(opts []Option) console {
	c := console{out: os.Stdout}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// report writes a single status line; write errors are dropped like fmt.Println does
func (c console) report(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
