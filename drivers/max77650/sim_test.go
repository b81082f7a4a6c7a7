package max77650

import (
	"errors"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// Compile-time checks.
var (
	_ drivers.I2C = (*simBus)(nil)
	_ i2c.Bus     = (*simBus)(nil)
)

var (
	errNack     = errors.New("sim: no acknowledge")
	errProtocol = errors.New("sim: unexpected transaction shape")
)

// simBus is a register-file model of one PMIC. Reads of read-clear registers
// return and then zero the byte; writes only change bits not covered by
// fixed; hooks run after a completed transaction.
type simBus struct {
	mu   sync.Mutex
	addr uint16
	regs [256]byte

	// fixed holds bits per register that writes cannot change.
	fixed [256]byte

	// failRead/failWrite return an error for the n-th (1-based) read/write Tx.
	failRead, failWrite int
	reads, writes       int

	// afterRead runs once after a read of reg completes, outside the lock.
	afterRead    func(reg byte)
	afterReadReg int
}

func newSim() *simBus {
	return &simBus{addr: AddressDefault, afterReadReg: -1}
}

func (s *simBus) String() string                  { return "sim" }
func (s *simBus) SetSpeed(physic.Frequency) error { return nil }

func (s *simBus) set(reg Register, v byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regs[reg] = v
}

func (s *simBus) peek(reg Register) byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regs[reg]
}

// fix marks bits of reg as hardware-owned.
func (s *simBus) fix(reg Register, bits byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixed[reg] = bits
}

// latch ORs event bits into reg, as the chip does on an interrupt.
func (s *simBus) latch(reg Register, bits byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regs[reg] |= bits
}

func (s *simBus) counts() (reads, writes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads, s.writes
}

func (s *simBus) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	if addr != s.addr {
		s.mu.Unlock()
		return errNack
	}
	switch {
	case len(w) == 1 && len(r) == 1:
		s.reads++
		if s.failRead == s.reads {
			s.mu.Unlock()
			return errNack
		}
		reg := w[0]
		r[0] = s.regs[reg]
		if Register(reg).ReadClear() {
			s.regs[reg] = 0
		}
		hook := s.afterRead
		if hook != nil && int(reg) == s.afterReadReg {
			s.afterRead = nil
		} else {
			hook = nil
		}
		s.mu.Unlock()
		if hook != nil {
			hook(reg)
		}
		return nil
	case len(w) == 2 && len(r) == 0:
		s.writes++
		if s.failWrite == s.writes {
			s.mu.Unlock()
			return errNack
		}
		reg := w[0]
		s.regs[reg] = (s.regs[reg] & s.fixed[reg]) | (w[1] &^ s.fixed[reg])
		s.mu.Unlock()
		return nil
	default:
		s.mu.Unlock()
		return errProtocol
	}
}
