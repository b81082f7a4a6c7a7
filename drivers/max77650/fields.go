package max77650

import (
	"max77650-go/x/bitx"
	"max77650-go/x/conv"
)

// Field is a named contiguous bit span inside one register.
type Field struct {
	Name   string
	Reg    Register
	Offset uint8 // LSB position
	Width  uint8 // bits
	Access Access
}

// Mask is the right-aligned value mask, (1<<Width)-1.
func (f Field) Mask() uint8 { return bitx.Mask[uint8](f.Width) }

// Span is the field's bit mask in place within the register byte.
func (f Field) Span() uint8 { return bitx.Span[uint8](f.Offset, f.Width) }

// Max is the largest raw code the field holds.
func (f Field) Max() uint8 { return f.Mask() }

// Extract returns the field's code from a full register byte.
func (f Field) Extract(reg byte) uint8 { return bitx.Extract(reg, f.Offset, f.Width) }

// Insert returns reg with the field's span replaced by v. Bits of v above the
// field width are dropped; all other bits of reg are kept.
func (f Field) Insert(reg byte, v uint8) byte { return bitx.Insert(reg, f.Offset, f.Width, v) }

// Fits reports whether v is a valid code for the field.
func (f Field) Fits(v uint8) bool { return bitx.Fits(v, f.Width) }

// Writable reports whether the field accepts Set.
func (f Field) Writable() bool { return f.Access == AccessRW }

// IsFlag reports whether the field is a single bit.
func (f Field) IsFlag() bool { return f.Width == 1 }

func (f Field) String() string {
	hi := f.Offset + f.Width - 1
	if f.Width == 1 {
		return f.Name + "[" + conv.Dec8(f.Offset) + "]@" + conv.Hex8(byte(f.Reg))
	}
	return f.Name + "[" + conv.Dec8(hi) + ":" + conv.Dec8(f.Offset) + "]@" + conv.Hex8(byte(f.Reg))
}

func rw(reg Register, name string, off, width uint8) Field {
	return Field{Name: name, Reg: reg, Offset: off, Width: width, Access: AccessRW}
}

func ro(reg Register, name string, off, width uint8) Field {
	return Field{Name: name, Reg: reg, Offset: off, Width: width, Access: AccessRO}
}

func rc(reg Register, name string, off uint8) Field {
	return Field{Name: name, Reg: reg, Offset: off, Width: 1, Access: AccessRC}
}

// INT_GLBL (0x00, RC).
var (
	DOD_R   = rc(RegIntGlbl, "DOD_R", 6)   // LDO dropout detector rising
	TJAL2_R = rc(RegIntGlbl, "TJAL2_R", 5) // thermal alarm 2 rising
	TJAL1_R = rc(RegIntGlbl, "TJAL1_R", 4) // thermal alarm 1 rising
	NEN_R   = rc(RegIntGlbl, "nEN_R", 3)
	NEN_F   = rc(RegIntGlbl, "nEN_F", 2)
	GPI_R   = rc(RegIntGlbl, "GPI_R", 1)
	GPI_F   = rc(RegIntGlbl, "GPI_F", 0)
)

// INT_CHG (0x01, RC).
var (
	SYS_CNFG_I   = rc(RegIntChg, "SYS_CNFG_I", 6)
	SYS_CTRL_I   = rc(RegIntChg, "SYS_CTRL_I", 5)
	CHGIN_CTRL_I = rc(RegIntChg, "CHGIN_CTRL_I", 4)
	TJ_REG_I     = rc(RegIntChg, "TJ_REG_I", 3)
	CHGIN_I      = rc(RegIntChg, "CHGIN_I", 2)
	CHG_I        = rc(RegIntChg, "CHG_I", 1)
	THM_I        = rc(RegIntChg, "THM_I", 0)
)

// STAT_CHG_A (0x02).
var (
	VCHGIN_MIN_STAT = ro(RegStatChgA, "VCHGIN_MIN_STAT", 6, 1)
	ICHGIN_LIM_STAT = ro(RegStatChgA, "ICHGIN_LIM_STAT", 5, 1)
	VSYS_MIN_STAT   = ro(RegStatChgA, "VSYS_MIN_STAT", 4, 1)
	TJ_REG_STAT     = ro(RegStatChgA, "TJ_REG_STAT", 3, 1)
	THM_DTLS        = ro(RegStatChgA, "THM_DTLS", 0, 3)
)

// STAT_CHG_B (0x03).
var (
	CHG_DTLS   = ro(RegStatChgB, "CHG_DTLS", 4, 4)
	CHGIN_DTLS = ro(RegStatChgB, "CHGIN_DTLS", 2, 2)
	CHG        = ro(RegStatChgB, "CHG", 1, 1)
	TIME_SUS   = ro(RegStatChgB, "TIME_SUS", 0, 1)
)

// ERCFLAG (0x04, RC).
var (
	PWR_HLD_RST = rc(RegERCFlag, "PWR_HLD_RST", 6)
	SFT_CRST_F  = rc(RegERCFlag, "SFT_CRST_F", 5)
	SFT_OFF_F   = rc(RegERCFlag, "SFT_OFF_F", 4)
	MRST        = rc(RegERCFlag, "MRST", 3)
	SYSUVLO     = rc(RegERCFlag, "SYSUVLO", 2)
	SYSOVLO     = rc(RegERCFlag, "SYSOVLO", 1)
	TOVLD       = rc(RegERCFlag, "TOVLD", 0)
)

// STAT_GLBL (0x05).
var (
	DIDM      = ro(RegStatGlbl, "DIDM", 6, 2)
	LDO_DOD   = ro(RegStatGlbl, "LDO_DOD", 5, 1)
	TJAL2_S   = ro(RegStatGlbl, "TJAL2_S", 4, 1)
	TJAL1_S   = ro(RegStatGlbl, "TJAL1_S", 3, 1)
	NEN_S     = ro(RegStatGlbl, "nEN_S", 2, 1)
	PWR_HLD_S = ro(RegStatGlbl, "PWR_HLD_S", 1, 1)
)

// Interrupt masks (0x06, 0x07). A set bit masks the matching interrupt.
var (
	INT_M_GLBL = rw(RegIntMGlbl, "INT_M_GLBL", 0, 7)
	INT_M_CHG  = rw(RegIntMChg, "INT_M_CHG", 0, 7)
)

// CNFG_GLBL (0x10).
var (
	BOK      = ro(RegCnfgGlbl, "BOK", 6, 1) // main bias okay, status only
	SBIA_LPM = rw(RegCnfgGlbl, "SBIA_LPM", 5, 1)
	SBIA_EN  = rw(RegCnfgGlbl, "SBIA_EN", 4, 1)
	NEN_MODE = rw(RegCnfgGlbl, "nEN_MODE", 3, 1)
	DBEN_NEN = rw(RegCnfgGlbl, "DBEN_nEN", 2, 1)
	SFT_RST  = rw(RegCnfgGlbl, "SFT_RST", 0, 2)
)

// CID (0x11).
var CID = ro(RegCID, "CID", 0, 4)

// CNFG_GPIO (0x12).
var (
	DBEN_GPI = rw(RegCnfgGPIO, "DBEN_GPI", 4, 1)
	DO       = rw(RegCnfgGPIO, "DO", 3, 1)
	DRV      = rw(RegCnfgGPIO, "DRV", 2, 1)
	DI       = ro(RegCnfgGPIO, "DI", 1, 1) // input level, status only
	DIR      = rw(RegCnfgGPIO, "DIR", 0, 1)
)

// CNFG_CHG_A..I (0x18..0x20).
var (
	THM_HOT  = rw(RegCnfgChgA, "THM_HOT", 6, 2)
	THM_WARM = rw(RegCnfgChgA, "THM_WARM", 4, 2)
	THM_COOL = rw(RegCnfgChgA, "THM_COOL", 2, 2)
	THM_COLD = rw(RegCnfgChgA, "THM_COLD", 0, 2)

	VCHGIN_MIN = rw(RegCnfgChgB, "VCHGIN_MIN", 5, 3)
	ICHGIN_LIM = rw(RegCnfgChgB, "ICHGIN_LIM", 2, 3)
	I_PQ       = rw(RegCnfgChgB, "I_PQ", 1, 1)
	CHG_EN     = rw(RegCnfgChgB, "CHG_EN", 0, 1)

	CHG_PQ   = rw(RegCnfgChgC, "CHG_PQ", 5, 3)
	I_TERM   = rw(RegCnfgChgC, "I_TERM", 3, 2)
	T_TOPOFF = rw(RegCnfgChgC, "T_TOPOFF", 0, 3)

	TJ_REG   = rw(RegCnfgChgD, "TJ_REG", 5, 3)
	VSYS_REG = rw(RegCnfgChgD, "VSYS_REG", 0, 5)

	CHG_CC     = rw(RegCnfgChgE, "CHG_CC", 2, 6)
	T_FAST_CHG = rw(RegCnfgChgE, "T_FAST_CHG", 0, 2)

	CHG_CC_JEITA = rw(RegCnfgChgF, "CHG_CC_JEITA", 2, 6)
	THM_EN       = rw(RegCnfgChgF, "THM_EN", 1, 1)

	CHG_CV = rw(RegCnfgChgG, "CHG_CV", 2, 6)
	USBS   = rw(RegCnfgChgG, "USBS", 1, 1)

	CHG_CV_JEITA = rw(RegCnfgChgH, "CHG_CV_JEITA", 2, 6)

	IMON_DISCHG_SCALE = rw(RegCnfgChgI, "IMON_DISCHG_SCALE", 4, 4)
	MUX_SEL           = rw(RegCnfgChgI, "MUX_SEL", 0, 4)
)

// CNFG_SBB_TOP and per-channel SIMO registers (0x28..0x2E).
var (
	MRT_OTP      = rw(RegCnfgSBBTop, "MRT_OTP", 6, 1)
	SBIA_LPM_DEF = rw(RegCnfgSBBTop, "SBIA_LPM_DEF", 5, 1)
	DBNC_NEN_DEF = rw(RegCnfgSBBTop, "DBNC_nEN_DEF", 4, 1)
	DRV_SBB      = rw(RegCnfgSBBTop, "DRV_SBB", 0, 2)

	IP_SBB0  = rw(RegCnfgSBB0A, "IP_SBB0", 6, 2)
	TV_SBB0  = rw(RegCnfgSBB0A, "TV_SBB0", 0, 6)
	ADE_SBB0 = rw(RegCnfgSBB0B, "ADE_SBB0", 3, 1)
	EN_SBB0  = rw(RegCnfgSBB0B, "EN_SBB0", 0, 3)

	IP_SBB1  = rw(RegCnfgSBB1A, "IP_SBB1", 6, 2)
	TV_SBB1  = rw(RegCnfgSBB1A, "TV_SBB1", 0, 6)
	ADE_SBB1 = rw(RegCnfgSBB1B, "ADE_SBB1", 3, 1)
	EN_SBB1  = rw(RegCnfgSBB1B, "EN_SBB1", 0, 3)

	IP_SBB2  = rw(RegCnfgSBB2A, "IP_SBB2", 6, 2)
	TV_SBB2  = rw(RegCnfgSBB2A, "TV_SBB2", 0, 6)
	ADE_SBB2 = rw(RegCnfgSBB2B, "ADE_SBB2", 3, 1)
	EN_SBB2  = rw(RegCnfgSBB2B, "EN_SBB2", 0, 3)
)

// LDO (0x38, 0x39).
var (
	TV_LDO  = rw(RegCnfgLDOA, "TV_LDO", 0, 7)
	ADE_LDO = rw(RegCnfgLDOB, "ADE_LDO", 3, 1)
	EN_LDO  = rw(RegCnfgLDOB, "EN_LDO", 0, 3)
)

// LED sinks (0x40..0x46).
var (
	LED_FS0  = rw(RegCnfgLED0A, "LED_FS0", 6, 2)
	INV_LED0 = rw(RegCnfgLED0A, "INV_LED0", 5, 1)
	BRT_LED0 = rw(RegCnfgLED0A, "BRT_LED0", 0, 5)
	P_LED0   = rw(RegCnfgLED0B, "P_LED0", 4, 4)
	D_LED0   = rw(RegCnfgLED0B, "D_LED0", 0, 4)

	LED_FS1  = rw(RegCnfgLED1A, "LED_FS1", 6, 2)
	INV_LED1 = rw(RegCnfgLED1A, "INV_LED1", 5, 1)
	BRT_LED1 = rw(RegCnfgLED1A, "BRT_LED1", 0, 5)
	P_LED1   = rw(RegCnfgLED1B, "P_LED1", 4, 4)
	D_LED1   = rw(RegCnfgLED1B, "D_LED1", 0, 4)

	LED_FS2  = rw(RegCnfgLED2A, "LED_FS2", 6, 2)
	INV_LED2 = rw(RegCnfgLED2A, "INV_LED2", 5, 1)
	BRT_LED2 = rw(RegCnfgLED2A, "BRT_LED2", 0, 5)
	P_LED2   = rw(RegCnfgLED2B, "P_LED2", 4, 4)
	D_LED2   = rw(RegCnfgLED2B, "D_LED2", 0, 4)

	CLK_64_S    = ro(RegCnfgLEDTop, "CLK_64_S", 1, 1) // 64 Hz clock status
	EN_LED_MSTR = rw(RegCnfgLEDTop, "EN_LED_MSTR", 0, 1)
)

// Register order, MSB first within each register.
var fieldTable = []Field{
	DOD_R, TJAL2_R, TJAL1_R, NEN_R, NEN_F, GPI_R, GPI_F,
	SYS_CNFG_I, SYS_CTRL_I, CHGIN_CTRL_I, TJ_REG_I, CHGIN_I, CHG_I, THM_I,
	VCHGIN_MIN_STAT, ICHGIN_LIM_STAT, VSYS_MIN_STAT, TJ_REG_STAT, THM_DTLS,
	CHG_DTLS, CHGIN_DTLS, CHG, TIME_SUS,
	PWR_HLD_RST, SFT_CRST_F, SFT_OFF_F, MRST, SYSUVLO, SYSOVLO, TOVLD,
	DIDM, LDO_DOD, TJAL2_S, TJAL1_S, NEN_S, PWR_HLD_S,
	INT_M_GLBL,
	INT_M_CHG,
	BOK, SBIA_LPM, SBIA_EN, NEN_MODE, DBEN_NEN, SFT_RST,
	CID,
	DBEN_GPI, DO, DRV, DI, DIR,
	THM_HOT, THM_WARM, THM_COOL, THM_COLD,
	VCHGIN_MIN, ICHGIN_LIM, I_PQ, CHG_EN,
	CHG_PQ, I_TERM, T_TOPOFF,
	TJ_REG, VSYS_REG,
	CHG_CC, T_FAST_CHG,
	CHG_CC_JEITA, THM_EN,
	CHG_CV, USBS,
	CHG_CV_JEITA,
	IMON_DISCHG_SCALE, MUX_SEL,
	MRT_OTP, SBIA_LPM_DEF, DBNC_NEN_DEF, DRV_SBB,
	IP_SBB0, TV_SBB0, ADE_SBB0, EN_SBB0,
	IP_SBB1, TV_SBB1, ADE_SBB1, EN_SBB1,
	IP_SBB2, TV_SBB2, ADE_SBB2, EN_SBB2,
	TV_LDO,
	ADE_LDO, EN_LDO,
	LED_FS0, INV_LED0, BRT_LED0,
	LED_FS1, INV_LED1, BRT_LED1,
	LED_FS2, INV_LED2, BRT_LED2,
	P_LED0, D_LED0,
	P_LED1, D_LED1,
	P_LED2, D_LED2,
	CLK_64_S, EN_LED_MSTR,
}

// Fields returns a copy of the full field table.
func Fields() []Field {
	return append([]Field(nil), fieldTable...)
}

// FieldByName looks a field up by its datasheet name (case-sensitive).
func FieldByName(name string) (Field, bool) {
	for _, f := range fieldTable {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldsOf lists the fields declared on reg, MSB first.
func FieldsOf(reg Register) []Field {
	var out []Field
	for _, f := range fieldTable {
		if f.Reg == reg {
			out = append(out, f)
		}
	}
	return out
}

// SBBFields groups one SIMO buck-boost channel.
type SBBFields struct {
	IP  Field // peak current limit
	TV  Field // target output voltage code
	ADE Field // active discharge enable
	EN  Field // enable control
}

// LEDFields groups one LED current sink.
type LEDFields struct {
	FS  Field // full-scale range
	INV Field // invert
	BRT Field // brightness
	P   Field // period
	D   Field // on duty cycle
}

// SBB returns the fields of SIMO channel ch (0..2).
func SBB(ch int) (SBBFields, error) {
	switch ch {
	case 0:
		return SBBFields{IP_SBB0, TV_SBB0, ADE_SBB0, EN_SBB0}, nil
	case 1:
		return SBBFields{IP_SBB1, TV_SBB1, ADE_SBB1, EN_SBB1}, nil
	case 2:
		return SBBFields{IP_SBB2, TV_SBB2, ADE_SBB2, EN_SBB2}, nil
	default:
		return SBBFields{}, ErrInvalidChannel
	}
}

// LED returns the fields of LED sink ch (0..2).
func LED(ch int) (LEDFields, error) {
	switch ch {
	case 0:
		return LEDFields{LED_FS0, INV_LED0, BRT_LED0, P_LED0, D_LED0}, nil
	case 1:
		return LEDFields{LED_FS1, INV_LED1, BRT_LED1, P_LED1, D_LED1}, nil
	case 2:
		return LEDFields{LED_FS2, INV_LED2, BRT_LED2, P_LED2, D_LED2}, nil
	default:
		return LEDFields{}, ErrInvalidChannel
	}
}
