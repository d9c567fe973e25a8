package main

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// CPU_SETSIZE in sched.h.
const maxCPUs = 1024

// pinToCPU locks the calling goroutine to its OS thread and restricts that
// thread to the lowest-numbered CPU it is currently allowed to run on.
// The returned func restores the previous affinity and unlocks the thread.
func pinToCPU() (unpin func() error, err error) {
	runtime.LockOSThread()
	defer func() {
		if err != nil {
			runtime.UnlockOSThread()
		}
	}()

	var old unix.CPUSet
	if err := unix.SchedGetaffinity(0, &old); err != nil {
		return nil, fmt.Errorf("error reading CPU affinity: %s", err)
	}
	cpu := lowestCPU(&old)
	if cpu < 0 {
		return nil, errors.New("empty CPU affinity mask")
	}
	var set unix.CPUSet
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("error pinning to CPU %d: %s", cpu, err)
	}
	return func() error {
		defer runtime.UnlockOSThread()
		return unix.SchedSetaffinity(0, &old)
	}, nil
}

func lowestCPU(set *unix.CPUSet) int {
	for cpu := 0; cpu < maxCPUs; cpu++ {
		if set.IsSet(cpu) {
			return cpu
		}
	}
	return -1
}
