package max77650

// ChargeState is STAT_CHG_B.CHG_DTLS.
type ChargeState uint8

const (
	ChgOff ChargeState = iota
	ChgPrequal
	ChgFastCC
	ChgFastCCJEITA
	ChgFastCV
	ChgFastCVJEITA
	ChgTopOff
	ChgTopOffJEITA
	ChgDone
	ChgDoneJEITA
	ChgPrequalTimerFault
	ChgFastTimerFault
	ChgBatteryTempFault
)

func (s ChargeState) String() string {
	switch s {
	case ChgOff:
		return "off"
	case ChgPrequal:
		return "prequal"
	case ChgFastCC:
		return "fast_cc"
	case ChgFastCCJEITA:
		return "fast_cc_jeita"
	case ChgFastCV:
		return "fast_cv"
	case ChgFastCVJEITA:
		return "fast_cv_jeita"
	case ChgTopOff:
		return "top_off"
	case ChgTopOffJEITA:
		return "top_off_jeita"
	case ChgDone:
		return "done"
	case ChgDoneJEITA:
		return "done_jeita"
	case ChgPrequalTimerFault:
		return "prequal_timer_fault"
	case ChgFastTimerFault:
		return "fast_timer_fault"
	case ChgBatteryTempFault:
		return "battery_temp_fault"
	default:
		return "reserved"
	}
}

// ThermState is STAT_CHG_A.THM_DTLS.
type ThermState uint8

const (
	ThmOff ThermState = iota
	ThmCold
	ThmCool
	ThmWarm
	ThmHot
	ThmNormal
)

func (s ThermState) String() string {
	switch s {
	case ThmOff:
		return "off"
	case ThmCold:
		return "cold"
	case ThmCool:
		return "cool"
	case ThmWarm:
		return "warm"
	case ThmHot:
		return "hot"
	case ThmNormal:
		return "normal"
	default:
		return "reserved"
	}
}

// ChargerStatus decodes STAT_CHG_A and STAT_CHG_B.
type ChargerStatus struct {
	VCHGINMinLoop bool // minimum input voltage regulation engaged
	ICHGINLimLoop bool // input current limit engaged
	VSYSMinLoop   bool // minimum system voltage regulation engaged
	TJRegLoop     bool // junction temperature regulation engaged
	Therm         ThermState
	State         ChargeState
	CHGINDetails  uint8
	Charging      bool // quick charger status, CHG
	TimeSuspended bool
}

// ChargerStatus reads both charger status registers once each.
func (d *Device) ChargerStatus() (ChargerStatus, error) {
	var s ChargerStatus
	a, err := d.ReadRegister(RegStatChgA)
	if err != nil {
		return s, err
	}
	b, err := d.ReadRegister(RegStatChgB)
	if err != nil {
		return s, err
	}
	s.VCHGINMinLoop = VCHGIN_MIN_STAT.Extract(a) != 0
	s.ICHGINLimLoop = ICHGIN_LIM_STAT.Extract(a) != 0
	s.VSYSMinLoop = VSYS_MIN_STAT.Extract(a) != 0
	s.TJRegLoop = TJ_REG_STAT.Extract(a) != 0
	s.Therm = ThermState(THM_DTLS.Extract(a))
	s.State = ChargeState(CHG_DTLS.Extract(b))
	s.CHGINDetails = CHGIN_DTLS.Extract(b)
	s.Charging = CHG.Extract(b) != 0
	s.TimeSuspended = TIME_SUS.Extract(b) != 0
	return s, nil
}

// GlobalStatus decodes STAT_GLBL.
type GlobalStatus struct {
	Part          Part
	LDODropout    bool
	ThermalAlarm2 bool
	ThermalAlarm1 bool
	NENActive     bool // debounced nEN
	PwrHldHigh    bool // debounced PWR_HLD
}

// GlobalStatus reads STAT_GLBL once.
func (d *Device) GlobalStatus() (GlobalStatus, error) {
	var s GlobalStatus
	b, err := d.ReadRegister(RegStatGlbl)
	if err != nil {
		return s, err
	}
	switch DIDM.Extract(b) {
	case 0b00:
		s.Part = PartMAX77650
	case 0b01:
		s.Part = PartMAX77651
	}
	s.LDODropout = LDO_DOD.Extract(b) != 0
	s.ThermalAlarm2 = TJAL2_S.Extract(b) != 0
	s.ThermalAlarm1 = TJAL1_S.Extract(b) != 0
	s.NENActive = NEN_S.Extract(b) != 0
	s.PwrHldHigh = PWR_HLD_S.Extract(b) != 0
	return s, nil
}
