package module

import (
	"reflect"
	"sync"
	"testing"

	"spamjar/internal/platform/testkit"
)

type portSet struct {
	Name string
	ID   int
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("detect", portSet{Name: "detect", ID: 1})
	Register("videos", portSet{Name: "videos", ID: 2})
	Register("detect", portSet{Name: "detect", ID: 3})

	got, ok := PortsAs[portSet]("detect")
	if !ok || got.ID != 3 {
		t.Fatalf("later Register should win, got %+v ok=%v", got, ok)
	}
	if _, ok := PortsAs[int]("detect"); ok {
		t.Fatal("type mismatch must report ok=false")
	}
	if got, ok := PortsAs[portSet]("missing"); ok || got != (portSet{}) {
		t.Fatalf("missing name: got %+v ok=%v", got, ok)
	}
	if names := Names(); !reflect.DeepEqual(names, []string{"detect", "videos"}) {
		t.Fatalf("Names() = %v", names)
	}

	Reset()
	if len(Names()) != 0 {
		t.Fatal("Reset should clear the registry")
	}
}

func TestRegistry_RejectsEmptyName(t *testing.T) {
	testkit.MustPanic(t, func() { Register("", portSet{}) })
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				Register("concurrent", portSet{Name: "k", ID: w*100 + i})
				_, _ = PortsAs[portSet]("concurrent")
				_ = Names()
			}
		}()
	}
	wg.Wait()

	if got, ok := PortsAs[portSet]("concurrent"); !ok || got.Name != "k" {
		t.Fatalf("unexpected final value %+v", got)
	}
}
