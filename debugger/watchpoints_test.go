package debugger

import (
	"testing"

	"github.com/knuth-mix/mixvm/mix"
	"github.com/knuth-mix/mixvm/vm"
)

func TestWatchpointManager_AddWatchpoint(t *testing.T) {
	wm := NewWatchpointManager()

	wp := wm.AddWatchpoint(WatchWrite, "ra", 0, true, "ra")

	if wp == nil {
		t.Fatal("AddWatchpoint returned nil")
	}

	if wp.ID != 1 {
		t.Errorf("Expected ID 1, got %d", wp.ID)
	}

	if wp.Type != WatchWrite {
		t.Errorf("Wrong watchpoint type: got %d, want %d", wp.Type, WatchWrite)
	}

	if wp.Expression != "ra" {
		t.Errorf("Expression = %s, want ra", wp.Expression)
	}

	if !wp.IsRegister {
		t.Error("Should be register watchpoint")
	}

	if !wp.Enabled {
		t.Error("Watchpoint should be enabled by default")
	}

	if wp.HitCount != 0 {
		t.Errorf("Initial hit count should be 0, got %d", wp.HitCount)
	}
}

func TestWatchpointManager_AddMultiple(t *testing.T) {
	wm := NewWatchpointManager()

	wp1 := wm.AddWatchpoint(WatchWrite, "ra", 0, true, "ra")
	wp2 := wm.AddWatchpoint(WatchRead, "[1000]", 1000, false, "")

	if wp1.ID == wp2.ID {
		t.Error("Watchpoint IDs should be unique")
	}

	if wm.Count() != 2 {
		t.Errorf("Expected 2 watchpoints, got %d", wm.Count())
	}
}

func TestWatchpointManager_DeleteWatchpoint(t *testing.T) {
	wm := NewWatchpointManager()

	wp := wm.AddWatchpoint(WatchWrite, "ra", 0, true, "ra")

	err := wm.DeleteWatchpoint(wp.ID)
	if err != nil {
		t.Fatalf("DeleteWatchpoint failed: %v", err)
	}

	if wm.GetWatchpoint(wp.ID) != nil {
		t.Error("Watchpoint not deleted")
	}

	err = wm.DeleteWatchpoint(999)
	if err == nil {
		t.Error("Expected error when deleting non-existent watchpoint")
	}
}

func TestWatchpointManager_EnableDisable(t *testing.T) {
	wm := NewWatchpointManager()

	wp := wm.AddWatchpoint(WatchWrite, "ra", 0, true, "ra")

	err := wm.DisableWatchpoint(wp.ID)
	if err != nil {
		t.Fatalf("DisableWatchpoint failed: %v", err)
	}

	if wp.Enabled {
		t.Error("Watchpoint not disabled")
	}

	err = wm.EnableWatchpoint(wp.ID)
	if err != nil {
		t.Fatalf("EnableWatchpoint failed: %v", err)
	}

	if !wp.Enabled {
		t.Error("Watchpoint not enabled")
	}
}

func TestWatchpointManager_CheckWatchpoints_Register(t *testing.T) {
	wm := NewWatchpointManager()
	machine := vm.NewMachine()

	wp := wm.AddWatchpoint(WatchWrite, "ra", 0, true, "ra")

	machine.A.Update(false, mix.MustByte(36), mix.MustByte(1)) // rA = 1*64+36 = 100
	err := wm.InitializeWatchpoint(wp.ID, machine)
	if err != nil {
		t.Fatalf("InitializeWatchpoint failed: %v", err)
	}

	if wp.LastValue != 100 {
		t.Errorf("LastValue = %d, want 100", wp.LastValue)
	}

	triggered, changed := wm.CheckWatchpoints(machine)
	if triggered != nil || changed {
		t.Error("Should not trigger when value hasn't changed")
	}

	machine.A.Update(false, mix.MustByte(8), mix.MustByte(3)) // rA = 3*64+8 = 200
	triggered, changed = wm.CheckWatchpoints(machine)
	if triggered == nil || !changed {
		t.Fatal("Should trigger when value changes")
	}

	if triggered.ID != wp.ID {
		t.Errorf("Wrong watchpoint triggered: got %d, want %d", triggered.ID, wp.ID)
	}

	if wp.HitCount != 1 {
		t.Errorf("Hit count = %d, want 1", wp.HitCount)
	}

	if wp.LastValue != 200 {
		t.Errorf("LastValue not updated: got %d, want 200", wp.LastValue)
	}
}

func TestWatchpointManager_CheckWatchpoints_Memory(t *testing.T) {
	wm := NewWatchpointManager()
	machine := vm.NewMachine()

	addr := 2000

	wp := wm.AddWatchpoint(WatchWrite, "[2000]", addr, false, "")

	if err := machine.Memory.Store(addr, mix.Word{Sign: false, B: [5]mix.Byte{0, 0, 0, 1, 1}}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	err := wm.InitializeWatchpoint(wp.ID, machine)
	if err != nil {
		t.Fatalf("InitializeWatchpoint failed: %v", err)
	}

	triggered, changed := wm.CheckWatchpoints(machine)
	if triggered != nil || changed {
		t.Error("Should not trigger when value hasn't changed")
	}

	if err := machine.Memory.Store(addr, mix.Word{Sign: true, B: [5]mix.Byte{0, 0, 0, 2, 2}}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	triggered, changed = wm.CheckWatchpoints(machine)
	if triggered == nil || !changed {
		t.Fatal("Should trigger when value changes")
	}

	if triggered.ID != wp.ID {
		t.Errorf("Wrong watchpoint triggered: got %d, want %d", triggered.ID, wp.ID)
	}
}

func TestWatchpointManager_Disabled(t *testing.T) {
	wm := NewWatchpointManager()
	machine := vm.NewMachine()

	wp := wm.AddWatchpoint(WatchWrite, "ra", 0, true, "ra")
	_ = wm.InitializeWatchpoint(wp.ID, machine)
	_ = wm.DisableWatchpoint(wp.ID)

	machine.A.Update(false, mix.MustByte(36), mix.MustByte(1)) // rA = 100

	triggered, _ := wm.CheckWatchpoints(machine)
	if triggered != nil {
		t.Error("Disabled watchpoint should not trigger")
	}
}

func TestWatchpointManager_GetAllWatchpoints(t *testing.T) {
	wm := NewWatchpointManager()

	wm.AddWatchpoint(WatchWrite, "ra", 0, true, "ra")
	wm.AddWatchpoint(WatchRead, "ri1", 0, true, "ri1")
	wm.AddWatchpoint(WatchReadWrite, "[1000]", 1000, false, "")

	all := wm.GetAllWatchpoints()

	if len(all) != 3 {
		t.Errorf("Expected 3 watchpoints, got %d", len(all))
	}
}

func TestWatchpointManager_Clear(t *testing.T) {
	wm := NewWatchpointManager()

	wm.AddWatchpoint(WatchWrite, "ra", 0, true, "ra")
	wm.AddWatchpoint(WatchRead, "ri1", 0, true, "ri1")

	wm.Clear()

	if wm.Count() != 0 {
		t.Errorf("Expected 0 watchpoints after clear, got %d", wm.Count())
	}
}

func TestWatchpoint_Types(t *testing.T) {
	wm := NewWatchpointManager()

	wpWrite := wm.AddWatchpoint(WatchWrite, "ra", 0, true, "ra")
	wpRead := wm.AddWatchpoint(WatchRead, "ri1", 0, true, "ri1")
	wpAccess := wm.AddWatchpoint(WatchReadWrite, "ri2", 0, true, "ri2")

	if wpWrite.Type != WatchWrite {
		t.Error("Wrong type for write watchpoint")
	}

	if wpRead.Type != WatchRead {
		t.Error("Wrong type for read watchpoint")
	}

	if wpAccess.Type != WatchReadWrite {
		t.Error("Wrong type for access watchpoint")
	}
}
