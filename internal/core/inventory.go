package core

import (
	"fmt"
	"math"
)

// InventoryLedger maps supply item names to quantities. Quantities only ever
// grow; there is no consume operation.
type InventoryLedger struct {
	order []string
	items map[string]InventoryItem
}

// NewInventoryLedger returns a ledger holding the fixed seed stock.
func NewInventoryLedger() (*InventoryLedger, error) {
	return newInventoryLedger(seedInventory)
}

func newInventoryLedger(seed []InventoryItem) (*InventoryLedger, error) {
	l := &InventoryLedger{items: make(map[string]InventoryItem, len(seed))}
	for _, item := range seed {
		if _, dup := l.items[item.Name]; dup {
			return nil, fmt.Errorf("inventory item %q seeded twice", item.Name)
		}
		if item.Quantity < 0 || math.IsNaN(item.Quantity) {
			return nil, fmt.Errorf("inventory item %q seeded with quantity %v", item.Name, item.Quantity)
		}
		l.order = append(l.order, item.Name)
		l.items[item.Name] = item
	}
	return l, nil
}

func (l *InventoryLedger) lookup(item string) (InventoryItem, error) {
	it, ok := l.items[item]
	if !ok {
		return InventoryItem{}, ErrNotFound{Kind: KindItem, Key: item}
	}
	return it, nil
}

// QuantityOf returns the stored quantity of item.
func (l *InventoryLedger) QuantityOf(item string) (float64, error) {
	it, err := l.lookup(item)
	if err != nil {
		return 0, err
	}
	return it.Quantity, nil
}

// Increment adds a non-negative delta to item.
func (l *InventoryLedger) Increment(item string, delta float64) error {
	if delta < 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return ValidationError{Field: "delta", Reason: fmt.Sprintf("must be a finite non-negative amount, got %v", delta)}
	}
	it, err := l.lookup(item)
	if err != nil {
		return err
	}
	it.Quantity += delta
	l.items[item] = it
	return nil
}

// IsLowStock reports whether item is below the shared threshold.
func (l *InventoryLedger) IsLowStock(item string) (bool, error) {
	it, err := l.lookup(item)
	if err != nil {
		return false, err
	}
	return it.IsLowStock(), nil
}

// TotalAssetValue sums quantity × price over the items named in prices.
func (l *InventoryLedger) TotalAssetValue(prices PriceTable) (float64, error) {
	for name := range prices {
		if _, ok := l.items[name]; !ok {
			return 0, ErrNotFound{Kind: KindItem, Key: name}
		}
	}
	var total float64
	for _, name := range l.order {
		if price, ok := prices[name]; ok {
			total += l.items[name].Quantity * price
		}
	}
	return total, nil
}

// Items returns a snapshot of every item in seed order.
func (l *InventoryLedger) Items() []InventoryItem {
	out := make([]InventoryItem, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.items[name])
	}
	return out
}

// LowStock returns the items currently below the threshold, in seed order.
func (l *InventoryLedger) LowStock() []InventoryItem {
	var out []InventoryItem
	for _, name := range l.order {
		if it := l.items[name]; it.IsLowStock() {
			out = append(out, it)
		}
	}
	return out
}
