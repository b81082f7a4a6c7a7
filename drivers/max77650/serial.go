package max77650

import "sync"

// Serial serialises whole accessor calls on a shared Device. Each method holds
// the lock across its full bus sequence, so read-modify-write cycles from
// different goroutines cannot interleave.
type Serial struct {
	mu sync.Mutex
	d  *Device
}

// NewSerial wraps d. Callers must stop using d directly.
func NewSerial(d *Device) *Serial { return &Serial{d: d} }

// Do runs fn with exclusive access to the Device, for multi-step sequences.
func (s *Serial) Do(fn func(d *Device) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.d)
}

func (s *Serial) Get(f Field) (uint8, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Get(f)
}

func (s *Serial) Flag(f Field) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Flag(f)
}

func (s *Serial) Set(f Field, v uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Set(f, v)
}

func (s *Serial) SetMasked(f Field, v uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.SetMasked(f, v)
}

func (s *Serial) SetFlag(f Field, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.SetFlag(f, on)
}

func (s *Serial) Update(values ...FieldValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Update(values...)
}

func (s *Serial) ReadRegister(reg Register) (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.ReadRegister(reg)
}

func (s *Serial) WriteRegister(reg Register, v byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.WriteRegister(reg, v)
}

func (s *Serial) DrainInterrupts() (InterruptEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.DrainInterrupts()
}
