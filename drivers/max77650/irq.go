package max77650

// GlobalInterrupts mirrors INT_GLBL and INTM_GLBL bit positions.
type GlobalInterrupts uint8

const (
	IntGPIFalling GlobalInterrupts = 1 << iota
	IntGPIRising
	IntNENFalling
	IntNENRising
	IntTJAL1Rising
	IntTJAL2Rising
	IntDODRising

	IntGlobalAll GlobalInterrupts = 0x7F
)

// ChargerInterrupts mirrors INT_CHG and INT_M_CHG bit positions.
type ChargerInterrupts uint8

const (
	IntTHM ChargerInterrupts = 1 << iota
	IntCHG
	IntCHGIN
	IntTJReg
	IntCHGINCtrl
	IntSysCtrl
	IntSysCnfg

	IntChargerAll ChargerInterrupts = 0x7F
)

// ResetFlags mirrors ERCFLAG.
type ResetFlags uint8

const (
	FlagTOVLD ResetFlags = 1 << iota // thermal overload
	FlagSYSOVLO
	FlagSYSUVLO
	FlagMRST      // manual reset timer
	FlagSftOff    // software off
	FlagSftCRst   // software cold reset
	FlagPwrHldRst // PWR_HLD
)

// Bitmask helpers.
func (b GlobalInterrupts) Has(flag GlobalInterrupts) bool   { return b&flag != 0 }
func (b ChargerInterrupts) Has(flag ChargerInterrupts) bool { return b&flag != 0 }
func (b ResetFlags) Has(flag ResetFlags) bool               { return b&flag != 0 }

// ReadGlobalInterrupts reads and clears INT_GLBL.
func (d *Device) ReadGlobalInterrupts() (GlobalInterrupts, error) {
	v, err := d.ReadRegister(RegIntGlbl)
	return GlobalInterrupts(v), err
}

// ReadChargerInterrupts reads and clears INT_CHG.
func (d *Device) ReadChargerInterrupts() (ChargerInterrupts, error) {
	v, err := d.ReadRegister(RegIntChg)
	return ChargerInterrupts(v), err
}

// ReadResetFlags reads and clears ERCFLAG.
func (d *Device) ReadResetFlags() (ResetFlags, error) {
	v, err := d.ReadRegister(RegERCFlag)
	return ResetFlags(v), err
}

// InterruptEvent summarises latched sources. A zero group means nothing latched.
type InterruptEvent struct {
	Global  GlobalInterrupts  // 0x00: INT_GLBL
	Charger ChargerInterrupts // 0x01: INT_CHG
	Reset   ResetFlags        // 0x04: ERCFLAG
}

// Empty reports whether nothing was latched in any group.
func (e InterruptEvent) Empty() bool {
	return e.Global == 0 && e.Charger == 0 && e.Reset == 0
}

// DrainInterrupts reads each read-clear register exactly once, in address
// order. Reads are not retried; on error the groups already read are
// returned alongside it, since those bits are gone from the chip.
// Call from non-ISR context (it performs I2C I/O).
func (d *Device) DrainInterrupts() (InterruptEvent, error) {
	var ev InterruptEvent
	g, err := d.ReadGlobalInterrupts()
	if err != nil {
		return ev, err
	}
	ev.Global = g
	c, err := d.ReadChargerInterrupts()
	if err != nil {
		return ev, err
	}
	ev.Charger = c
	r, err := d.ReadResetFlags()
	if err != nil {
		return ev, err
	}
	ev.Reset = r
	return ev, nil
}

// InterruptMasks returns the current INTM_GLBL and INT_M_CHG settings.
// A set bit masks the interrupt.
func (d *Device) InterruptMasks() (GlobalInterrupts, ChargerInterrupts, error) {
	g, err := d.Get(INT_M_GLBL)
	if err != nil {
		return 0, 0, err
	}
	c, err := d.Get(INT_M_CHG)
	if err != nil {
		return 0, 0, err
	}
	return GlobalInterrupts(g), ChargerInterrupts(c), nil
}

// SetInterruptMasks writes both mask registers, global first.
func (d *Device) SetInterruptMasks(global GlobalInterrupts, charger ChargerInterrupts) error {
	if err := d.Set(INT_M_GLBL, uint8(global)); err != nil {
		return err
	}
	return d.Set(INT_M_CHG, uint8(charger))
}
