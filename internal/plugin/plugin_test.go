package plugin

import (
	"context"
	"errors"
	"testing"
)

type fakePlugin struct {
	name    string
	initErr error
	inits   int
	closes  int
}

func (p *fakePlugin) Name() string                 { return p.name }
func (p *fakePlugin) Init(_ context.Context) error { p.inits++; return p.initErr }
func (p *fakePlugin) Close() error                 { p.closes++; return nil }

func TestRegisterAndGet(t *testing.T) {
	s := NewSet()
	if err := s.Register(&fakePlugin{name: "fs"}); err != nil { t.Fatalf("Register: %v", err) }
	if _, ok := s.Get("fs"); !ok { t.Fatal("fs not found") }
	if _, ok := s.Get("nope"); ok { t.Fatal("unexpected plugin") }
}

func TestRegisterDuplicateFails(t *testing.T) {
	s := NewSet()
	if err := s.Register(&fakePlugin{name: "fs"}); err != nil { t.Fatalf("Register: %v", err) }
	if err := s.Register(&fakePlugin{name: "fs"}); err == nil { t.Fatal("duplicate accepted") }
}

func TestRegisterBuiltins(t *testing.T) {
	s := NewSet()
	if err := RegisterBuiltins(s); err != nil { t.Fatalf("RegisterBuiltins: %v", err) }
	names := s.Names()
	want := []string{"dialog", "fs", "shell"}
	if len(names) != len(want) { t.Fatalf("names=%v", names) }
	for i := range want {
		if names[i] != want[i] { t.Fatalf("names=%v, want %v", names, want) }
	}
}

func TestInitAllStopsOnFailure(t *testing.T) {
	s := NewSet()
	bad := &fakePlugin{name: "bad", initErr: errors.New("no host")}
	if err := s.Register(bad); err != nil { t.Fatalf("Register: %v", err) }
	if err := s.InitAll(context.Background()); err == nil { t.Fatal("expected init error") }
	if bad.inits != 1 { t.Fatalf("inits=%d", bad.inits) }
}

func TestCloseAll(t *testing.T) {
	s := NewSet()
	p1 := &fakePlugin{name: "a"}
	p2 := &fakePlugin{name: "b"}
	if err := s.Register(p1); err != nil { t.Fatalf("Register: %v", err) }
	if err := s.Register(p2); err != nil { t.Fatalf("Register: %v", err) }
	if err := s.CloseAll(); err != nil { t.Fatalf("CloseAll: %v", err) }
	if p1.closes != 1 || p2.closes != 1 { t.Fatalf("closes=%d,%d", p1.closes, p2.closes) }
}
