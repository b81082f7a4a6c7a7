package max77650

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestReadClearSecondReadIsZero(t *testing.T) {
	c := qt.New(t)
	sim := newSim()
	sim.latch(RegIntChg, byte(IntCHGIN|IntTHM))
	d := New(sim, DefaultConfig())

	got, err := d.ReadChargerInterrupts()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, IntCHGIN|IntTHM)
	c.Assert(got.Has(IntCHGIN), qt.IsTrue)
	c.Assert(got.Has(IntCHG), qt.IsFalse)

	got, err = d.ReadChargerInterrupts()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, ChargerInterrupts(0))
}

// A field read of a read-clear register consumes its siblings too.
func TestFieldReadOnReadClearRegisterConsumesAll(t *testing.T) {
	c := qt.New(t)
	sim := newSim()
	sim.latch(RegIntGlbl, GPI_R.Span()|NEN_F.Span())
	d := New(sim, DefaultConfig())

	on, err := d.Flag(GPI_R)
	c.Assert(err, qt.IsNil)
	c.Assert(on, qt.IsTrue)

	on, err = d.Flag(NEN_F)
	c.Assert(err, qt.IsNil)
	c.Assert(on, qt.IsFalse)
}

func TestChargerInterruptsReadFromIntChg(t *testing.T) {
	c := qt.New(t)
	sim := newSim()
	sim.set(RegCnfgGPIO, 0xFF)
	d := New(sim, DefaultConfig())

	got, err := d.ReadChargerInterrupts()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, ChargerInterrupts(0))
	c.Assert(sim.peek(RegCnfgGPIO), qt.Equals, byte(0xFF))
}

func TestDrainInterrupts(t *testing.T) {
	c := qt.New(t)
	sim := newSim()
	sim.latch(RegIntGlbl, byte(IntNENFalling))
	sim.latch(RegIntChg, byte(IntCHG))
	sim.latch(RegERCFlag, byte(FlagSftCRst))
	d := New(sim, DefaultConfig())

	ev, err := d.DrainInterrupts()
	c.Assert(err, qt.IsNil)
	c.Assert(ev, qt.Equals, InterruptEvent{
		Global:  IntNENFalling,
		Charger: IntCHG,
		Reset:   FlagSftCRst,
	})
	c.Assert(ev.Reset.Has(FlagSftCRst), qt.IsTrue)
	c.Assert(ev.Empty(), qt.IsFalse)

	r, _ := sim.counts()
	c.Assert(r, qt.Equals, 3)

	ev, err = d.DrainInterrupts()
	c.Assert(err, qt.IsNil)
	c.Assert(ev.Empty(), qt.IsTrue)
}

func TestDrainInterruptsPartial(t *testing.T) {
	c := qt.New(t)
	sim := newSim()
	sim.latch(RegIntGlbl, byte(IntDODRising))
	sim.latch(RegIntChg, byte(IntTJReg))
	sim.failRead = 2
	d := New(sim, DefaultConfig())

	ev, err := d.DrainInterrupts()
	c.Assert(err, qt.ErrorIs, ErrTransport)
	c.Assert(ev.Global, qt.Equals, IntDODRising)
	c.Assert(ev.Charger, qt.Equals, ChargerInterrupts(0))

	// The failed read never reached the chip; the event is still latched.
	c.Assert(sim.peek(RegIntChg), qt.Equals, byte(IntTJReg))
}

func TestInterruptMasks(t *testing.T) {
	c := qt.New(t)
	sim := newSim()
	d := New(sim, DefaultConfig())

	c.Assert(d.SetInterruptMasks(IntGlobalAll&^IntNENFalling, IntChargerAll), qt.IsNil)
	c.Assert(sim.peek(RegIntMGlbl), qt.Equals, byte(0x7B))
	c.Assert(sim.peek(RegIntMChg), qt.Equals, byte(0x7F))

	g, ch, err := d.InterruptMasks()
	c.Assert(err, qt.IsNil)
	c.Assert(g, qt.Equals, IntGlobalAll&^IntNENFalling)
	c.Assert(ch, qt.Equals, IntChargerAll)

	// Bit 7 of both mask registers is reserved.
	c.Assert(d.SetInterruptMasks(0x80, 0), qt.ErrorIs, ErrInvalidValue)
	c.Assert(d.SetInterruptMasks(0, 0x80), qt.ErrorIs, ErrInvalidValue)
	c.Assert(sim.peek(RegIntMGlbl), qt.Equals, byte(0))
}
