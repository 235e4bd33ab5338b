//go:build !windows
// +build !windows

package main

// enableVT is a no-op off Windows; ANSI escapes work natively.
func enableVT() {}
