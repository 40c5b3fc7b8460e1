package grace

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var signalChan chan os.Signal
var hooks = make([]func(), 0)
var hookLock sync.Mutex

func init() {
	signalChan = make(chan os.Signal, 1)
	signal.Notify(signalChan,
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	go func() {
		for range signalChan {
			for _, hook := range hooks {
				hook()
			}
			os.Exit(0)
		}
	}()
}

// OnInterrupt registers a cleanup hook to run before the process
// exits on SIGINT or SIGTERM.
func OnInterrupt(fn func()) {
	// prevent reentry
	hookLock.Lock()
	defer hookLock.Unlock()
	hooks = append(hooks, fn)
}
