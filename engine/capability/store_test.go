package capability

import "testing"

type shieldData struct {
	charges int
}

type heatData struct {
	level float64
}

var (
	shieldKey = NewKey[shieldData]("test:shield")
	heatKey   = NewKey[heatData]("test:heat")
)

func TestGetOnEmptyHolder(t *testing.T) {
	store := NewStore()
	h := store.Attach()
	if _, ok := Get(store, h, shieldKey); ok {
		t.Fatalf("fresh holder should not have shield data")
	}
}

func TestGetOrCreateCreatesOnce(t *testing.T) {
	store := NewStore()
	h := store.Attach()
	created := 0
	create := func() *shieldData {
		created++
		return &shieldData{}
	}

	first := GetOrCreate(store, h, shieldKey, create)
	first.charges = 3
	second := GetOrCreate(store, h, shieldKey, create)

	if created != 1 {
		t.Errorf("create called %d times, want 1", created)
	}
	if second.charges != 3 {
		t.Errorf("charges = %d, want 3", second.charges)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	store := NewStore()
	h := store.Attach()
	Put(store, h, shieldKey, &shieldData{charges: 2})
	Put(store, h, heatKey, &heatData{level: 0.5})

	shield, ok := Get(store, h, shieldKey)
	if !ok || shield.charges != 2 {
		t.Fatalf("shield lost after adding heat: %v %v", shield, ok)
	}
	Remove(store, h, heatKey)
	if _, ok := Get(store, h, heatKey); ok {
		t.Errorf("heat should be removed")
	}
	if _, ok := Get(store, h, shieldKey); !ok {
		t.Errorf("removing heat dropped shield")
	}
}

func TestPutReplaces(t *testing.T) {
	store := NewStore()
	h := store.Attach()
	Put(store, h, shieldKey, &shieldData{charges: 1})
	Put(store, h, shieldKey, &shieldData{charges: 9})
	shield, _ := Get(store, h, shieldKey)
	if shield.charges != 9 {
		t.Errorf("charges = %d, want 9", shield.charges)
	}
}

func TestDetachedHandleIsAbsent(t *testing.T) {
	store := NewStore()
	h := store.Attach()
	Put(store, h, shieldKey, &shieldData{charges: 1})
	store.Detach(h)

	if store.Valid(h) {
		t.Fatalf("handle still valid after detach")
	}
	if _, ok := Get(store, h, shieldKey); ok {
		t.Errorf("detached handle still has data")
	}
	if Put(store, h, shieldKey, &shieldData{}) {
		t.Errorf("put on detached handle should fail")
	}
	if got := GetOrCreate(store, h, shieldKey, func() *shieldData { return &shieldData{} }); got != nil {
		t.Errorf("GetOrCreate on detached handle = %v, want nil", got)
	}
	store.Detach(h)
}

func TestEachVisitsOnlyHolders(t *testing.T) {
	store := NewStore()
	a := store.Attach()
	b := store.Attach()
	store.Attach()
	Put(store, a, shieldKey, &shieldData{charges: 1})
	Put(store, b, shieldKey, &shieldData{charges: 2})

	total := 0
	visited := 0
	Each(store, shieldKey, func(h Handle, value *shieldData) {
		visited++
		total += value.charges
	})
	if visited != 2 || total != 3 {
		t.Errorf("visited %d holders with total %d, want 2 and 3", visited, total)
	}
	if shieldKey.Name() != "test:shield" {
		t.Errorf("key name = %s", shieldKey.Name())
	}
}

func TestAttachedHandlesAreValid(t *testing.T) {
	store := NewStore()
	handles := make([]Handle, 0, 200)
	for i := 0; i < 200; i++ {
		h := store.Attach()
		if !store.Valid(h) {
			t.Fatalf("handle %d not valid right after attach", i)
		}
		handles = append(handles, h)
	}

	first := GetOrCreate(store, handles[0], shieldKey, func() *shieldData { return &shieldData{charges: 5} })
	for _, h := range handles[1:] {
		Put(store, h, shieldKey, &shieldData{charges: 1})
		Put(store, h, heatKey, &heatData{level: 1})
	}
	store.Detach(handles[1])

	first.charges = 7
	got, ok := Get(store, handles[0], shieldKey)
	if !ok || got != first || got.charges != 7 {
		t.Errorf("stored pointer moved: got %v, want %v", got, first)
	}
	if !store.Valid(handles[199]) {
		t.Errorf("unrelated handle invalid after detach")
	}
}
