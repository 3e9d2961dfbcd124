//go:build !linux || tinygo

package main

import (
	"fmt"
	"io"

	"xecgpio/core"
)

type noDevMem struct {
	core.RegisterIO
	io.Closer
}

func openDevMem() (*noDevMem, error) {
	return nil, fmt.Errorf("--devmem requires linux")
}
