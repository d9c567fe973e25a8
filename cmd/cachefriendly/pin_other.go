//go:build !linux

package main

import "errors"

func pinToCPU() (unpin func() error, err error) {
	return nil, errors.New("CPU pinning is only implemented on Linux")
}
