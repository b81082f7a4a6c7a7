package platform

import (
	"os"
	"testing"

	qt "github.com/frankban/quicktest"

	"max77650-go/drivers/max77650"
	"max77650-go/drivers/max77650/irqwatch"
	"max77650-go/errcode"
)

var _ irqwatch.Pin = (*IRQLine)(nil)

func TestOpenI2CUnknownBus(t *testing.T) {
	c := qt.New(t)
	_, err := OpenI2C("no-such-bus-42")
	c.Assert(err, qt.IsNotNil)
	code := errcode.Of(err)
	c.Assert(code == errcode.Transport || code == errcode.Unsupported, qt.IsTrue, qt.Commentf("code %q", code))
}

// Needs hardware: MAX77650_I2C=/dev/i2c-1 go test ./platform
func TestProbeOnHardware(t *testing.T) {
	name := os.Getenv("MAX77650_I2C")
	if name == "" {
		t.Skip("MAX77650_I2C not set")
	}
	c := qt.New(t)
	bus, err := OpenI2C(name)
	c.Assert(err, qt.IsNil)
	defer bus.Close()

	names, err := I2CBuses()
	c.Assert(err, qt.IsNil)
	c.Assert(names, qt.Not(qt.HasLen), 0)

	d := max77650.New(bus, max77650.DefaultConfig())
	id, err := d.Probe()
	c.Assert(err, qt.IsNil)
	c.Assert(id.Part, qt.Not(qt.Equals), max77650.PartUnknown)
	t.Logf("part %v cid %#x", id.Part, id.CID)
}
