package session

// MemorySlot est un SessionSlot en mémoire, utilisé par les tests.
type MemorySlot struct {
	data []byte
}

// NewMemorySlot construit un slot vide.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Seed préremplit le slot avec des octets arbitraires (tests de corruption).
func (m *MemorySlot) Seed(data []byte) {
	m.data = append([]byte(nil), data...)
}

func (m *MemorySlot) Read() ([]byte, error) {
	if m.data == nil {
		return nil, nil
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemorySlot) Write(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *MemorySlot) Clear() error {
	m.data = nil
	return nil
}
