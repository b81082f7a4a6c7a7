//go:build !linux

package platform

import (
	"errors"

	"max77650-go/errcode"
)

// IRQLine is only available on Linux.
type IRQLine struct{}

func OpenIRQLine(chip string, offset int) (*IRQLine, error) {
	return nil, errcode.Wrap(errcode.Unsupported, "platform.gpio", errors.New("gpio character devices need linux"))
}

func (*IRQLine) Get() bool           { return true }
func (*IRQLine) SetIRQ(func()) error { return errcode.Unsupported }
func (*IRQLine) ClearIRQ() error     { return nil }
func (*IRQLine) Close() error        { return nil }
