package max77650

// RegisterValue is one register byte captured by Dump.
type RegisterValue struct {
	Reg   Register
	Value byte
}

// Fields decodes the captured byte into every field declared on the register.
func (rv RegisterValue) Fields() []FieldValue {
	fs := FieldsOf(rv.Reg)
	out := make([]FieldValue, len(fs))
	for i, f := range fs {
		out[i] = FieldValue{Field: f, Value: f.Extract(rv.Value)}
	}
	return out
}

// Dump reads every known register once, in address order. Read-clear
// registers are skipped unless includeReadClear is set, because reading them
// discards pending events. Registers that fail to read are left out; the
// first error is returned with whatever was captured.
func (d *Device) Dump(includeReadClear bool) ([]RegisterValue, error) {
	out := make([]RegisterValue, 0, len(registerTable))
	var firstErr error
	for _, ri := range registerTable {
		if ri.access == AccessRC && !includeReadClear {
			continue
		}
		v, err := d.readRegister("read", ri.reg)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, RegisterValue{Reg: ri.reg, Value: v})
	}
	return out, firstErr
}
