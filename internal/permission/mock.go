package permission

import "sync"

// Mock is a Gate test double with per-path outcomes.
type Mock struct {
	mu     sync.Mutex
	err    error
	errs   map[string]error
	checks []string
}

func NewMock() *Mock {
	return &Mock{errs: make(map[string]error)}
}

func (m *Mock) Check(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks = append(m.checks, dir)
	if err, ok := m.errs[dir]; ok {
		return err
	}
	return m.err
}

// Deny makes every Check fail with ErrDenied.
func (m *Mock) Deny() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = ErrDenied
}

// DenyPath makes Check fail with ErrDenied for one path only.
func (m *Mock) DenyPath(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[dir] = ErrDenied
}

// Checks returns a copy of all checked paths.
func (m *Mock) Checks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.checks))
	copy(out, m.checks)
	return out
}

var _ Gate = (*Mock)(nil)
