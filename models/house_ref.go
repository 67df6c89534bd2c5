package models

import "encoding/json"

// HouseRef is the shape a linked house arrives in at the listing boundary.
// A resolved ("populated") list carries the full house record; an
// unresolved one carries only the bare identifier. Aggregation code must
// only ever see resolved refs; normalization happens at the service edge.
type HouseRef struct {
	id    uint
	house *House
}

// RefHouseID builds an unresolved reference from a bare identifier.
func RefHouseID(id uint) HouseRef {
	return HouseRef{id: id}
}

// RefHouse builds a resolved reference from a full record.
func RefHouse(h *House) HouseRef {
	if h == nil {
		return HouseRef{}
	}
	return HouseRef{id: h.ID, house: h}
}

// Resolved reports whether the full house record is present.
func (r HouseRef) Resolved() bool {
	return r.house != nil
}

// HouseID returns the referenced house id, resolved or not.
func (r HouseRef) HouseID() uint {
	return r.id
}

// House returns the resolved record, or nil for a bare reference.
func (r HouseRef) House() *House {
	return r.house
}

// MarshalJSON emits the full record when resolved, otherwise the bare id,
// matching what list consumers expect from a populated response.
func (r HouseRef) MarshalJSON() ([]byte, error) {
	if r.house != nil {
		return json.Marshal(r.house)
	}
	return json.Marshal(r.id)
}
