package logs

import (
	"io"
	"log"
	"os"
	"sync"
)

const prefix = "[notifeed] "

var (
	Logger = log.New(os.Stderr, prefix, 0)
	mu     sync.Mutex
)

// SetOutput points the shared logger at w. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	Logger = log.New(w, prefix, 0)
}
