package max77650

// Single-byte register transactions. No retries: a stuck or absent device is
// reported to the caller on the first failure.

// ReadRegister selects reg with a pointer write and reads one byte back in the
// same transaction (repeated start). Reading a read-clear register consumes
// its latched bits.
func (d *Device) ReadRegister(reg Register) (byte, error) {
	if !reg.Known() {
		return 0, &Error{Op: "read", Reg: reg, Err: ErrUnknownReg}
	}
	return d.readRegister("read", reg)
}

// WriteRegister writes a full byte to a read/write register. Read-only and
// read-clear registers are refused without touching the bus.
func (d *Device) WriteRegister(reg Register, v byte) error {
	switch reg.Access() {
	case AccessRW:
	case AccessRO:
		return &Error{Op: "write", Reg: reg, Err: ErrReadOnly}
	case AccessRC:
		return &Error{Op: "write", Reg: reg, Err: ErrReadClear}
	default:
		return &Error{Op: "write", Reg: reg, Err: ErrUnknownReg}
	}
	return d.writeRegister(reg, v)
}

func (d *Device) readRegister(op string, reg Register) (byte, error) {
	d.w[0] = byte(reg)
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, &Error{Op: op, Reg: reg, Err: transportError{err}}
	}
	return d.r[0], nil
}

func (d *Device) writeRegister(reg Register, v byte) error {
	d.w[0] = byte(reg)
	d.w[1] = v
	if err := d.i2c.Tx(d.addr, d.w[:2], nil); err != nil {
		return &Error{Op: "write", Reg: reg, Err: transportError{err}}
	}
	return nil
}
