// Command demo is a minimal tuifw application: a window tree driven by
// the router's input loop, rendered through the Bubble Tea backend, with
// a label whose text is kept current by the bindings engine.
package main

import (
	"fmt"
	"os"

	bt "github.com/newbpydev/tuifw/backend/bubbletea"
)

func main() {
	err := bt.Run(func(backend *bt.Backend) {
		a := buildApp(backend)
		go func() {
			a.run()
			backend.Quit()
		}()
	}, bt.WithAltScreen())
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}
