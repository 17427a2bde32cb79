package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// withSpinner runs fn while animating msg on the status stream. Nothing is
// drawn unless stderr is a terminal, so redirected output stays clean.
func withSpinner(ctx context.Context, msg string, fn func() error) error {
	if !isTerminal(os.Stderr) {
		return fn()
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		tick := time.NewTicker(spinnerInterval)
		defer tick.Stop()
		for i := 0; ; i++ {
			fmt.Fprintf(uiOut, "\r%s %s", styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]), StyleDim.Render(msg))
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-tick.C:
			}
		}
	}()

	err := fn()
	close(stop)
	wg.Wait()
	fmt.Fprintf(uiOut, "\r%s\r", strings.Repeat(" ", len(msg)+4))
	return err
}
