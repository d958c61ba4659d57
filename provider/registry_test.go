package provider

import (
	"context"
	"reflect"
	"testing"
)

type fakeProvider struct {
	name string
}

func (f *fakeProvider) Name() string                       { return f.name }
func (f *fakeProvider) IsAvailable(_ context.Context) bool { return true }

func TestRegistryCreate(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	reg.RegisterFactory("fake", func(cfg map[string]any) (*fakeProvider, error) {
		name, _ := cfg["name"].(string)
		return &fakeProvider{name: name}, nil
	})

	p, err := reg.Create("fake", map[string]any{"name": "a"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name() != "a" {
		t.Errorf("name = %q, want a", p.Name())
	}

	if _, err := reg.Create("missing", nil); err == nil {
		t.Error("expected error for unregistered factory")
	}
}

func TestRegistryInstanceCache(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	if _, ok := reg.Get("x"); ok {
		t.Error("expected cache miss")
	}
	inst := &fakeProvider{name: "x"}
	reg.Set("x", inst)
	got, ok := reg.Get("x")
	if !ok || got != inst {
		t.Errorf("Get = (%v, %v), want cached instance", got, ok)
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	factory := func(map[string]any) (*fakeProvider, error) { return &fakeProvider{}, nil }
	reg.RegisterFactory("b", factory)
	reg.RegisterFactory("a", factory)
	if got := reg.List(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("List = %v, want [a b]", got)
	}
}
