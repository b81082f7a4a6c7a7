// Package platform opens host I²C buses for the drivers.
//
// Buses come from periph.io; any periph i2c.Bus already satisfies
// tinygo drivers.I2C, so the result can be handed to max77650.New directly.
package platform

import (
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"

	"max77650-go/errcode"
)

var _ drivers.I2C = i2c.Bus(nil)

var (
	initOnce sync.Once
	initErr  error
)

func hostInit() error {
	initOnce.Do(func() {
		_, initErr = host.Init()
	})
	return initErr
}

// OpenI2C initialises the host drivers and opens the named bus. An empty
// name selects the first bus found. Close the returned bus when done.
func OpenI2C(name string) (i2c.BusCloser, error) {
	if err := hostInit(); err != nil {
		return nil, errcode.Wrap(errcode.Unsupported, "platform.init", err)
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, errcode.Wrap(errcode.Transport, "platform.open", err)
	}
	return bus, nil
}

// I2CBuses lists the registered bus names, for diagnostics.
func I2CBuses() ([]string, error) {
	if err := hostInit(); err != nil {
		return nil, errcode.Wrap(errcode.Unsupported, "platform.init", err)
	}
	refs := i2creg.All()
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out, nil
}
