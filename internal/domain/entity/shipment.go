package entity

import (
	"errors"
	"fmt"
)

// Shipment errors define domain-specific error conditions for item lists.
var (
	ErrItemNotFound    = errors.New("shipment item not found")
	ErrDuplicateItemID = errors.New("duplicate shipment item ID")
)

// Shipment is the ordered list of items a presentation layer edits.
// Item IDs are unique within a shipment. The zero value is an empty
// shipment; NewShipment starts with one placeholder item.
type Shipment struct {
	items []*ShipmentItem
}

// NewShipment creates a shipment holding a single default item.
//
// Returns:
//   - *Shipment: newly created shipment
func NewShipment() *Shipment {
	s := &Shipment{}
	s.Reset()
	return s
}

// Add appends an existing item.
//
// Parameters:
//   - item: the item to append; its ID must not be in use
//
// Returns:
//   - error: ErrDuplicateItemID if another item already has that ID
func (s *Shipment) Add(item *ShipmentItem) error {
	if _, err := s.Item(item.ID); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateItemID, item.ID)
	}
	s.items = append(s.items, item)
	return nil
}

// AddItem appends a default-valued item with a fresh unique ID.
//
// Returns:
//   - *ShipmentItem: the appended item, for the caller to edit
func (s *Shipment) AddItem() *ShipmentItem {
	item := NewShipmentItem()
	s.items = append(s.items, item)
	return item
}

// RemoveItem deletes the item with the given ID.
//
// Parameters:
//   - id: the item's ID
//
// Returns:
//   - error: ErrItemNotFound if no item has that ID
func (s *Shipment) RemoveItem(id string) error {
	for idx, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:idx], s.items[idx+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Item looks up an item by ID.
//
// Returns:
//   - *ShipmentItem: the item, for in-place edits
//   - error: ErrItemNotFound if no item has that ID
func (s *Shipment) Item(id string) (*ShipmentItem, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

// Items returns the items in insertion order. The returned slice is a copy.
func (s *Shipment) Items() []*ShipmentItem {
	out := make([]*ShipmentItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *Shipment) Len() int {
	return len(s.items)
}

// Reset replaces the whole list with one default item.
func (s *Shipment) Reset() {
	s.items = []*ShipmentItem{NewShipmentItem()}
}
