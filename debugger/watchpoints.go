package debugger

import (
	"fmt"
	"sync"

	"github.com/knuth-mix/mixvm/vm"
)

// WatchType represents the type of watchpoint.
// NOTE: the current implementation can only detect value changes, not specific
// read/write operations. All watchpoint types behave the same way -- they
// trigger when the monitored value differs from its previous value. True
// read-only or write-only tracking would require integration with the
// machine's memory access layer.
type WatchType int

const (
	WatchWrite     WatchType = iota // Trigger on write (currently same as WatchReadWrite)
	WatchRead                       // Trigger on read (currently same as WatchReadWrite)
	WatchReadWrite                  // Trigger on read or write (value change detection)
)

// Watchpoint monitors a memory cell or register for value changes.
type Watchpoint struct {
	ID           int
	Type         WatchType
	Expression   string // Expression being watched (e.g. "rA", "[1000]", "MYVAR")
	Address      int    // Resolved memory cell for memory watchpoints
	IsRegister   bool   // True if watching a register
	RegisterName string // Register name (e.g. "ra", "ri1") if IsRegister is true
	Enabled      bool
	LastValue    int64
	HitCount     int
}

// WatchpointManager manages every watchpoint set in a debugging session.
type WatchpointManager struct {
	mu          sync.RWMutex
	watchpoints map[int]*Watchpoint
	nextID      int
}

// NewWatchpointManager returns an empty watchpoint manager.
func NewWatchpointManager() *WatchpointManager {
	return &WatchpointManager{
		watchpoints: make(map[int]*Watchpoint),
		nextID:      1,
	}
}

// AddWatchpoint adds a new watchpoint.
func (wm *WatchpointManager) AddWatchpoint(wpType WatchType, expression string, address int, isRegister bool, registerName string) *Watchpoint {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	wp := &Watchpoint{
		ID:           wm.nextID,
		Type:         wpType,
		Expression:   expression,
		Address:      address,
		IsRegister:   isRegister,
		RegisterName: registerName,
		Enabled:      true,
	}

	wm.watchpoints[wp.ID] = wp
	wm.nextID++

	return wp
}

// DeleteWatchpoint removes a watchpoint by ID.
func (wm *WatchpointManager) DeleteWatchpoint(id int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	if _, exists := wm.watchpoints[id]; !exists {
		return fmt.Errorf("watchpoint %d not found", id)
	}

	delete(wm.watchpoints, id)
	return nil
}

// EnableWatchpoint enables a watchpoint by ID.
func (wm *WatchpointManager) EnableWatchpoint(id int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	wp, exists := wm.watchpoints[id]
	if !exists {
		return fmt.Errorf("watchpoint %d not found", id)
	}

	wp.Enabled = true
	return nil
}

// DisableWatchpoint disables a watchpoint by ID.
func (wm *WatchpointManager) DisableWatchpoint(id int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	wp, exists := wm.watchpoints[id]
	if !exists {
		return fmt.Errorf("watchpoint %d not found", id)
	}

	wp.Enabled = false
	return nil
}

// GetWatchpoint gets a watchpoint by ID.
func (wm *WatchpointManager) GetWatchpoint(id int) *Watchpoint {
	wm.mu.RLock()
	defer wm.mu.RUnlock()

	return wm.watchpoints[id]
}

// GetAllWatchpoints returns every watchpoint.
func (wm *WatchpointManager) GetAllWatchpoints() []*Watchpoint {
	wm.mu.RLock()
	defer wm.mu.RUnlock()

	result := make([]*Watchpoint, 0, len(wm.watchpoints))
	for _, wp := range wm.watchpoints {
		result = append(result, wp)
	}

	return result
}

// CheckWatchpoints checks every watchpoint and returns the first that changed.
func (wm *WatchpointManager) CheckWatchpoints(machine *vm.Machine) (*Watchpoint, bool) {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	for _, wp := range wm.watchpoints {
		if !wp.Enabled {
			continue
		}

		currentValue, err := wm.readValue(machine, wp)
		if err != nil {
			continue
		}

		if currentValue != wp.LastValue {
			wp.HitCount++
			wp.LastValue = currentValue
			return wp, true
		}
	}

	return nil, false
}

// InitializeWatchpoint sets the baseline value for a watchpoint.
func (wm *WatchpointManager) InitializeWatchpoint(id int, machine *vm.Machine) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	wp, exists := wm.watchpoints[id]
	if !exists {
		return fmt.Errorf("watchpoint %d not found", id)
	}

	value, err := wm.readValue(machine, wp)
	if err != nil {
		return fmt.Errorf("failed to initialize watchpoint: %w", err)
	}
	wp.LastValue = value
	return nil
}

func (wm *WatchpointManager) readValue(machine *vm.Machine, wp *Watchpoint) (int64, error) {
	if wp.IsRegister {
		v, ok := registerValue(machine, wp.RegisterName)
		if !ok {
			return 0, fmt.Errorf("invalid register: %s", wp.RegisterName)
		}
		return v, nil
	}
	w, err := machine.Memory.Load(wp.Address)
	if err != nil {
		return 0, err
	}
	return w.Int(), nil
}

// Clear removes every watchpoint.
func (wm *WatchpointManager) Clear() {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	wm.watchpoints = make(map[int]*Watchpoint)
}

// Count returns the number of watchpoints.
func (wm *WatchpointManager) Count() int {
	wm.mu.RLock()
	defer wm.mu.RUnlock()

	return len(wm.watchpoints)
}
