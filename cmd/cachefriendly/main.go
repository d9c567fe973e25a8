// Command cachefriendly times incrementing a 10,000-element array in place
// against reading it into a second array, and prints both durations.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"

	"github.com/indyrs/cachefriendly/traverse"
)

func main() {
	log.SetFlags(log.Lshortfile)

	unpin, err := pinToCPU()
	if err != nil {
		size := humanize.Bytes(uint64(unsafe.Sizeof(traverse.Array{})))
		log.Printf("Not pinned to a CPU (%s); timings over %s arrays may be noisy", err, size)
	} else {
		defer func() {
			if err := unpin(); err != nil {
				log.Println("Error restoring CPU affinity:", err)
			}
		}()
	}
	run(os.Stdout)
}

type strategy struct {
	label string
	fn    func()
}

var strategies = []strategy{
	{"In Place", traverse.InPlace},
	{"Swapped", traverse.Swapped},
}

type measurement struct {
	label   string
	elapsed time.Duration
}

func (m measurement) String() string {
	return fmt.Sprintf("%-9s %s", m.label+":", m.elapsed)
}

// measure calls fn once to warm the cache and then times a second call.
func measure(s strategy) measurement {
	s.fn()
	start := time.Now()
	s.fn()
	return measurement{label: s.label, elapsed: time.Since(start)}
}

func run(w io.Writer) []measurement {
	ms := make([]measurement, 0, len(strategies))
	for _, s := range strategies {
		m := measure(s)
		fmt.Fprintln(w, m)
		ms = append(ms, m)
	}
	return ms
}
