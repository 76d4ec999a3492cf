//go:build android

package main

import "firstgame/internal/platform/mobile"

func main() {
	mobile.Run()
}
