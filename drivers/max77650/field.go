package max77650

// FieldValue pairs a field with a raw code for Update.
type FieldValue struct {
	Field Field
	Value uint8
}

// Get reads f's register and returns the field code. On a read-clear
// register this consumes every latched bit of the register, not only f's.
func (d *Device) Get(f Field) (uint8, error) {
	if !f.Reg.Known() {
		return 0, &Error{Op: "get", Reg: f.Reg, Field: f.Name, Err: ErrUnknownReg}
	}
	b, err := d.readRegister("get", f.Reg)
	if err != nil {
		return 0, err
	}
	return f.Extract(b), nil
}

// Flag reads a one-bit field.
func (d *Device) Flag(f Field) (bool, error) {
	v, err := d.Get(f)
	return v != 0, err
}

// Set writes v into f with read-modify-write-verify. Codes wider than the
// field are rejected with ErrInvalidValue before any bus traffic; use
// SetMasked for truncating semantics.
//
// A nil return means the verify read saw v. Transport failures (ErrTransport)
// and read-back mismatches (ErrVerifyMismatch) are reported separately.
func (d *Device) Set(f Field, v uint8) error {
	if err := checkWritable("set", f); err != nil {
		return err
	}
	if !f.Fits(v) {
		return &Error{Op: "set", Reg: f.Reg, Field: f.Name, Err: ErrInvalidValue}
	}
	return d.modifyVerify(f.Reg, []FieldValue{{f, v}})
}

// SetMasked writes v&f.Mask() and verifies against the truncated code.
func (d *Device) SetMasked(f Field, v uint8) error {
	if err := checkWritable("set", f); err != nil {
		return err
	}
	return d.modifyVerify(f.Reg, []FieldValue{{f, v & f.Mask()}})
}

// SetFlag writes a one-bit field.
func (d *Device) SetFlag(f Field, on bool) error {
	if !f.IsFlag() {
		return &Error{Op: "set", Reg: f.Reg, Field: f.Name, Err: ErrInvalidValue}
	}
	var v uint8
	if on {
		v = 1
	}
	return d.Set(f, v)
}

// Update writes several fields of one register in a single
// read-modify-write-verify cycle. All fields must live in the same register.
func (d *Device) Update(values ...FieldValue) error {
	if len(values) == 0 {
		return nil
	}
	reg := values[0].Field.Reg
	for _, fv := range values {
		f := fv.Field
		if f.Reg != reg {
			return &Error{Op: "update", Reg: f.Reg, Field: f.Name, Err: ErrInvalidValue}
		}
		if err := checkWritable("update", f); err != nil {
			return err
		}
		if !f.Fits(fv.Value) {
			return &Error{Op: "update", Reg: f.Reg, Field: f.Name, Err: ErrInvalidValue}
		}
	}
	return d.modifyVerify(reg, values)
}

func checkWritable(op string, f Field) error {
	var err error
	switch {
	case f.Access == AccessRC || f.Reg.Access() == AccessRC:
		err = ErrReadClear
	case f.Access == AccessRO || f.Reg.Access() == AccessRO:
		err = ErrReadOnly
	case !f.Reg.Known():
		err = ErrUnknownReg
	}
	if err != nil {
		return &Error{Op: op, Reg: f.Reg, Field: f.Name, Err: err}
	}
	return nil
}

// modifyVerify: read, clear spans, insert codes, write, read back, compare.
// Only the caller's fields are compared; bits the chip may change on its own
// (status bits in the same byte) do not fail the verify.
func (d *Device) modifyVerify(reg Register, values []FieldValue) error {
	cur, err := d.readRegister("read", reg)
	if err != nil {
		return err
	}
	next := cur
	for _, fv := range values {
		next = fv.Field.Insert(next, fv.Value)
	}
	if err := d.writeRegister(reg, next); err != nil {
		return err
	}
	back, err := d.readRegister("verify", reg)
	if err != nil {
		return err
	}
	for _, fv := range values {
		if got := fv.Field.Extract(back); got != fv.Value {
			return &Error{Op: "verify", Reg: reg, Field: fv.Field.Name,
				Err: &VerifyError{Field: fv.Field, Want: fv.Value, Got: got}}
		}
	}
	return nil
}
