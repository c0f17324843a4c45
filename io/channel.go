// Package io provides output channel implementations for the LS8 emulator.
package io

// Channel defines the interface for output channels of the LS8 system.
// A channel receives one value per PRN instruction.
type Channel interface {
	// Send writes a single value to the channel.
	Send(value byte) error
}
