package cartstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/models"
)

type memoryStorage struct {
	data map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{data: map[string][]byte{}}
}

func (m *memoryStorage) Load(key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memoryStorage) Save(key string, data []byte) error {
	m.data[key] = data
	return nil
}

type failingStorage struct{}

func (failingStorage) Load(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStorage) Save(string, []byte) error   { return errors.New("disk gone") }

func item(id string, price float64) models.CartItem {
	return models.CartItem{ID: id, Name: "Item " + id, Brand: "Chhajed", WeightLabel: "200g", UnitPrice: price}
}

func TestAddItemMergesExistingID(t *testing.T) {
	s := New(newMemoryStorage())
	s.AddItem(item("a", 100), 1)
	s.AddItem(item("b", 50), 2)
	s.AddItem(item("a", 100), 3)

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ID != "a" || items[0].Quantity != 4 {
		t.Fatalf("expected line a first with quantity 4, got %+v", items[0])
	}
	if items[1].ID != "b" || items[1].Quantity != 2 {
		t.Fatalf("expected line b second with quantity 2, got %+v", items[1])
	}
}

func TestTotalsTrackMutations(t *testing.T) {
	s := New(newMemoryStorage())
	s.AddItem(item("a", 100), 2)
	s.AddItem(item("b", 50), 1)
	s.UpdateQuantity("b", 3)
	s.AddItem(item("c", 10), 1)
	s.RemoveItem("c")

	if got := s.TotalItemCount(); got != 5 {
		t.Fatalf("expected 5 items, got %d", got)
	}
	if got := s.TotalPrice(); got != 350 {
		t.Fatalf("expected subtotal 350, got %v", got)
	}
}

func TestUpdateQuantityZeroRemovesAndKeepsOrder(t *testing.T) {
	s := New(newMemoryStorage())
	s.AddItem(item("a", 10), 1)
	s.AddItem(item("b", 10), 1)
	s.AddItem(item("c", 10), 1)
	s.UpdateQuantity("b", 0)

	items := s.Items()
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "c" {
		t.Fatalf("expected [a c] after removal, got %+v", items)
	}
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	s := New(newMemoryStorage())
	s.AddItem(item("a", 10), 1)
	s.UpdateQuantity("ghost", 5)

	if got := s.TotalItemCount(); got != 1 {
		t.Fatalf("expected cart untouched, got count %d", got)
	}
}

func TestHydrationRoundTrip(t *testing.T) {
	storage := newMemoryStorage()
	s := New(storage)
	s.AddItem(item("a", 100), 2)
	s.AddItem(item("b", 25), 1)

	reloaded := New(storage)
	items := reloaded.Items()
	if len(items) != 2 || items[0].ID != "a" || items[0].Quantity != 2 {
		t.Fatalf("expected hydrated cart to match, got %+v", items)
	}
}

func TestHydrationCorruptDataYieldsEmptyCart(t *testing.T) {
	storage := newMemoryStorage()
	storage.data[storageKey] = []byte("{not json")

	s := New(storage)
	if got := s.TotalItemCount(); got != 0 {
		t.Fatalf("expected empty cart from corrupt data, got count %d", got)
	}
}

func TestStorageFailuresAreSwallowed(t *testing.T) {
	s := New(failingStorage{})
	s.AddItem(item("a", 100), 1)
	s.UpdateQuantity("a", 2)

	if got := s.TotalPrice(); got != 200 {
		t.Fatalf("expected in-memory cart to keep working, got %v", got)
	}
}

func TestSubscribersNotifiedOnMutation(t *testing.T) {
	s := New(newMemoryStorage())
	calls := 0
	s.Subscribe(func() { calls++ })

	s.AddItem(item("a", 10), 1)
	s.UpdateQuantity("a", 2)
	s.Clear()

	if calls != 3 {
		t.Fatalf("expected 3 notifications, got %d", calls)
	}
}

func TestFileStoragePersistsAcrossStores(t *testing.T) {
	dir := t.TempDir()
	s := New(NewFileStorage(dir))
	s.AddItem(item("a", 100), 2)

	reloaded := New(NewFileStorage(dir))
	if got := reloaded.TotalItemCount(); got != 2 {
		t.Fatalf("expected 2 items after reload, got %d", got)
	}
	if _, err := NewFileStorage(filepath.Join(dir, "missing")).Load(storageKey); err != nil {
		t.Fatalf("missing dir should read as empty, got error: %v", err)
	}
}
