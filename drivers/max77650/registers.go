// Package max77650 provides register-level access to the MAX77650/MAX77651
// power-management ICs: SIMO buck-boost, LDO, linear charger, LED sinks and
// GPIO, all configured through one 8-bit register file on I²C.
//
// Design notes (datasheet references):
// • Single-byte registers; pointer write then repeated-start read.
// • 7-bit address 0x48 (0x40 on the alternate OTP option).
// • INT_GLBL, INT_CHG and ERCFLAG clear on read. Read them once per event.
// • Setters are read-modify-write-verify over the whole byte. The driver holds
//   no lock; see Serial for goroutine-shared buses.
// • Field values are raw register codes. Unit conversion is left to callers.
package max77650

import "max77650-go/x/conv"

// 7-bit I2C addresses.
const (
	AddressDefault   = 0x48
	AddressAlternate = 0x40
)

// Register is a one-byte register address.
type Register uint8

// Register map.
const (
	RegIntGlbl    Register = 0x00 // RC  Global interrupt status
	RegIntChg     Register = 0x01 // RC  Charger interrupt status
	RegStatChgA   Register = 0x02 // R   Charger status A
	RegStatChgB   Register = 0x03 // R   Charger status B
	RegERCFlag    Register = 0x04 // RC  Reset/event flags
	RegStatGlbl   Register = 0x05 // R   Global status
	RegIntMGlbl   Register = 0x06 // R/W Global interrupt mask
	RegIntMChg    Register = 0x07 // R/W Charger interrupt mask
	RegCnfgGlbl   Register = 0x10 // R/W Global configuration
	RegCID        Register = 0x11 // R   Chip ID
	RegCnfgGPIO   Register = 0x12 // R/W GPIO configuration
	RegCnfgChgA   Register = 0x18 // R/W Charger configuration A..I
	RegCnfgChgB   Register = 0x19
	RegCnfgChgC   Register = 0x1A
	RegCnfgChgD   Register = 0x1B
	RegCnfgChgE   Register = 0x1C
	RegCnfgChgF   Register = 0x1D
	RegCnfgChgG   Register = 0x1E
	RegCnfgChgH   Register = 0x1F
	RegCnfgChgI   Register = 0x20
	RegCnfgSBBTop Register = 0x28 // R/W SIMO global configuration
	RegCnfgSBB0A  Register = 0x29
	RegCnfgSBB0B  Register = 0x2A
	RegCnfgSBB1A  Register = 0x2B
	RegCnfgSBB1B  Register = 0x2C
	RegCnfgSBB2A  Register = 0x2D
	RegCnfgSBB2B  Register = 0x2E
	RegCnfgLDOA   Register = 0x38
	RegCnfgLDOB   Register = 0x39
	RegCnfgLED0A  Register = 0x40
	RegCnfgLED1A  Register = 0x41
	RegCnfgLED2A  Register = 0x42
	RegCnfgLED0B  Register = 0x43
	RegCnfgLED1B  Register = 0x44
	RegCnfgLED2B  Register = 0x45
	RegCnfgLEDTop Register = 0x46
)

// Access is the bus discipline of a register or field.
type Access uint8

const (
	AccessNone Access = iota // unknown address
	AccessRO                 // read-only
	AccessRW                 // read/write
	AccessRC                 // read-clear: reading consumes the latched bits
)

func (a Access) String() string {
	switch a {
	case AccessRO:
		return "R"
	case AccessRW:
		return "R/W"
	case AccessRC:
		return "RC"
	default:
		return "none"
	}
}

type regInfo struct {
	reg    Register
	name   string
	access Access
}

// Address order.
var registerTable = [...]regInfo{
	{RegIntGlbl, "INT_GLBL", AccessRC},
	{RegIntChg, "INT_CHG", AccessRC},
	{RegStatChgA, "STAT_CHG_A", AccessRO},
	{RegStatChgB, "STAT_CHG_B", AccessRO},
	{RegERCFlag, "ERCFLAG", AccessRC},
	{RegStatGlbl, "STAT_GLBL", AccessRO},
	{RegIntMGlbl, "INTM_GLBL", AccessRW},
	{RegIntMChg, "INT_M_CHG", AccessRW},
	{RegCnfgGlbl, "CNFG_GLBL", AccessRW},
	{RegCID, "CID", AccessRO},
	{RegCnfgGPIO, "CNFG_GPIO", AccessRW},
	{RegCnfgChgA, "CNFG_CHG_A", AccessRW},
	{RegCnfgChgB, "CNFG_CHG_B", AccessRW},
	{RegCnfgChgC, "CNFG_CHG_C", AccessRW},
	{RegCnfgChgD, "CNFG_CHG_D", AccessRW},
	{RegCnfgChgE, "CNFG_CHG_E", AccessRW},
	{RegCnfgChgF, "CNFG_CHG_F", AccessRW},
	{RegCnfgChgG, "CNFG_CHG_G", AccessRW},
	{RegCnfgChgH, "CNFG_CHG_H", AccessRW},
	{RegCnfgChgI, "CNFG_CHG_I", AccessRW},
	{RegCnfgSBBTop, "CNFG_SBB_TOP", AccessRW},
	{RegCnfgSBB0A, "CNFG_SBB0_A", AccessRW},
	{RegCnfgSBB0B, "CNFG_SBB0_B", AccessRW},
	{RegCnfgSBB1A, "CNFG_SBB1_A", AccessRW},
	{RegCnfgSBB1B, "CNFG_SBB1_B", AccessRW},
	{RegCnfgSBB2A, "CNFG_SBB2_A", AccessRW},
	{RegCnfgSBB2B, "CNFG_SBB2_B", AccessRW},
	{RegCnfgLDOA, "CNFG_LDO_A", AccessRW},
	{RegCnfgLDOB, "CNFG_LDO_B", AccessRW},
	{RegCnfgLED0A, "CNFG_LED0_A", AccessRW},
	{RegCnfgLED1A, "CNFG_LED1_A", AccessRW},
	{RegCnfgLED2A, "CNFG_LED2_A", AccessRW},
	{RegCnfgLED0B, "CNFG_LED0_B", AccessRW},
	{RegCnfgLED1B, "CNFG_LED1_B", AccessRW},
	{RegCnfgLED2B, "CNFG_LED2_B", AccessRW},
	{RegCnfgLEDTop, "CNFG_LED_TOP", AccessRW},
}

func (r Register) info() (regInfo, bool) {
	for _, ri := range registerTable {
		if ri.reg == r {
			return ri, true
		}
	}
	return regInfo{}, false
}

// Known reports whether r is in the register map.
func (r Register) Known() bool {
	_, ok := r.info()
	return ok
}

// Access returns the register's bus discipline, or AccessNone if unknown.
func (r Register) Access() Access {
	ri, _ := r.info()
	return ri.access
}

// ReadClear reports whether reading r consumes its contents.
func (r Register) ReadClear() bool { return r.Access() == AccessRC }

// Name returns the datasheet mnemonic, or "" if unknown.
func (r Register) Name() string {
	ri, _ := r.info()
	return ri.name
}

// String returns "NAME(0xAA)", or just the address if r is unknown.
func (r Register) String() string {
	ri, ok := r.info()
	if !ok {
		return conv.Hex8(byte(r))
	}
	return ri.name + "(" + conv.Hex8(byte(r)) + ")"
}

// RegisterByName looks a register up by its datasheet mnemonic.
func RegisterByName(name string) (Register, bool) {
	for _, ri := range registerTable {
		if ri.name == name {
			return ri.reg, true
		}
	}
	return 0, false
}

// Registers lists every known register in address order.
func Registers() []Register {
	out := make([]Register, len(registerTable))
	for i, ri := range registerTable {
		out[i] = ri.reg
	}
	return out
}
