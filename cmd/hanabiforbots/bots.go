package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lox/hanabiforbots/internal/bot"
)

// BotsCmd lists the built-in bots
type BotsCmd struct{}

func (c *BotsCmd) Run() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range bot.Names() {
		b, err := bot.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", nameStyle.Render(name), b.Description())
	}
	return w.Flush()
}
