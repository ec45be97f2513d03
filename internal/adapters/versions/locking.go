package versions

import "sync"

// LockingManager serialises every access to the persistent cache within one
// process. A single instance is shared by all caches of a build.
type LockingManager struct {
	mu sync.Mutex
}

// NewLockingManager creates a LockingManager.
func NewLockingManager() *LockingManager {
	return &LockingManager{}
}

// WithLock runs fn while holding the build-wide lock.
func (m *LockingManager) WithLock(fn func() error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn()
}
