package max77650

import "tinygo.org/x/drivers"

// Part identifies the die variant reported in STAT_GLBL.DIDM.
type Part uint8

const (
	PartUnknown Part = iota
	PartMAX77650
	PartMAX77651
)

func (p Part) String() string {
	switch p {
	case PartMAX77650:
		return "MAX77650"
	case PartMAX77651:
		return "MAX77651"
	default:
		return "unknown"
	}
}

// Driver configuration. Immutable once passed to New.
type Config struct {
	Address uint16 // AddressDefault or AddressAlternate; zero means default
	Part    Part   // optional; Probe checks the die against it when set
}

// DefaultConfig targets the primary address and accepts either part.
func DefaultConfig() Config {
	return Config{Address: AddressDefault}
}

// Validate rejects addresses the part cannot answer on and unknown parts.
func (c Config) Validate() error {
	switch c.Address {
	case 0, AddressDefault, AddressAlternate:
	default:
		return ErrInvalidAddress
	}
	switch c.Part {
	case PartUnknown, PartMAX77650, PartMAX77651:
	default:
		return ErrInvalidPart
	}
	return nil
}

// Device is one PMIC on an I²C bus.
//
// Device holds no lock. Each accessor is a complete bus sequence, but two
// setters racing on fields of the same register can lose an update because
// each merges into its own read of the register. Share a Device between
// goroutines only through Serial or an equivalent external lock.
type Device struct {
	i2c  drivers.I2C
	addr uint16
	cfg  Config

	// Fixed buffers to avoid per-call heap allocations.
	w [2]byte
	r [1]byte
}

// New constructs a Device. It does not touch the bus.
func New(i2c drivers.I2C, cfg Config) *Device {
	if cfg.Address == 0 {
		cfg.Address = AddressDefault
	}
	return &Device{i2c: i2c, addr: cfg.Address, cfg: cfg}
}

// NewChecked validates cfg before constructing the Device.
func NewChecked(i2c drivers.I2C, cfg Config) (*Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(i2c, cfg), nil
}

// Introspection.
func (d *Device) Address() uint16 { return d.addr }
func (d *Device) Config() Config  { return d.cfg }

// Identity is what Probe learns from the die.
type Identity struct {
	Part Part
	CID  uint8 // OTP option code
}

// Probe reads DIDM and CID. When Config.Part is set and the die reports a
// different part, the identity is returned together with ErrPartMismatch.
func (d *Device) Probe() (Identity, error) {
	var id Identity
	didm, err := d.Get(DIDM)
	if err != nil {
		return id, err
	}
	switch didm {
	case 0b00:
		id.Part = PartMAX77650
	case 0b01:
		id.Part = PartMAX77651
	}
	if id.CID, err = d.Get(CID); err != nil {
		return id, err
	}
	if d.cfg.Part != PartUnknown && id.Part != d.cfg.Part {
		return id, &Error{Op: "probe", Reg: RegStatGlbl, Field: DIDM.Name, Err: ErrPartMismatch}
	}
	return id, nil
}
