//go:build linux && !tinygo

package main

import "xecgpio/targets/mec1701"

func openDevMem() (*mec1701.DevMem, error) {
	return mec1701.OpenDevMem()
}
