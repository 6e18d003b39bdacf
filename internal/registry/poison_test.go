package registry

import (
	"strings"
	"testing"
)

// panicPublisher blows up mid-critical-section, like a poisoned mutex.
type panicPublisher struct{ after int }

func (p *panicPublisher) Publish(Event) {
	if p.after <= 0 {
		panic("publisher exploded")
	}
	p.after--
}

func TestPanicInCriticalSectionPoisons(t *testing.T) {
	r := NewWithConfig(Config{Publisher: &panicPublisher{}})
	err := r.SetAgentStatus("a", "x")
	if err == nil { t.Fatal("expected error from poisoned op") }
	if !IsLockUnavailable(err) { t.Fatalf("err=%v, want lock unavailable", err) }
	if !strings.Contains(err.Error(), "publisher exploded") { t.Fatalf("err=%v", err) }
}

func TestPoisonedRegistryFailsAllOps(t *testing.T) {
	r := NewWithConfig(Config{Publisher: &panicPublisher{after: 1}})
	if err := r.AddTask("t1", "d"); err != nil { t.Fatalf("first op: %v", err) }
	if err := r.AddTask("t2", "d"); err == nil || !IsLockUnavailable(err) { t.Fatalf("poisoning op: %v", err) }

	if _, err := r.AgentStatuses(); !IsLockUnavailable(err) { t.Fatalf("AgentStatuses: %v", err) }
	if _, err := r.Tasks(); !IsLockUnavailable(err) { t.Fatalf("Tasks: %v", err) }
	if err := r.SetAgentStatus("a", "x"); !IsLockUnavailable(err) { t.Fatalf("SetAgentStatus: %v", err) }
	if err := r.AddTask("t3", "d"); !IsLockUnavailable(err) { t.Fatalf("AddTask: %v", err) }
	if err := r.RemoveTask("t1"); !IsLockUnavailable(err) { t.Fatalf("RemoveTask: %v", err) }

	if r.Ready() { t.Fatal("poisoned registry reports ready") }
	st := r.Status()
	if st.State != string(StatePoisoned) { t.Fatalf("state=%q", st.State) }
	if st.LastError == "" { t.Fatal("expected last_error to be set") }

	// AppInfo is pure and must keep working.
	if info := r.AppInfo(); info.Name != AppName { t.Fatalf("app info: %+v", info) }
}

func TestIsLockUnavailable(t *testing.T) {
	if !IsLockUnavailable(ErrLockUnavailable("boom")) { t.Fatal("constructor not recognized") }
	if IsLockUnavailable(nil) { t.Fatal("nil recognized") }
}
