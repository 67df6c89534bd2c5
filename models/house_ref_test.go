package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHouseRefMarshal(t *testing.T) {
	t.Run("unresolved emits bare id", func(t *testing.T) {
		data, err := json.Marshal(RefHouseID(42))
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(data) != "42" {
			t.Errorf("Marshal = %s, want 42", data)
		}
	})

	t.Run("resolved emits full record", func(t *testing.T) {
		house := &House{
			BaseModel:    BaseModel{ID: 42},
			HouseNumber:  "B-114",
			ResidentName: "Muhammad Asif",
			HouseSize:    "10 marla",
		}
		data, err := json.Marshal(RefHouse(house))
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !strings.Contains(string(data), `"house_number":"B-114"`) {
			t.Errorf("Marshal = %s, want full house record", data)
		}
	})
}

func TestHouseRefAccessors(t *testing.T) {
	bare := RefHouseID(7)
	if bare.Resolved() {
		t.Error("bare ref reports resolved")
	}
	if bare.HouseID() != 7 {
		t.Errorf("HouseID = %d, want 7", bare.HouseID())
	}
	if bare.House() != nil {
		t.Error("bare ref carries a record")
	}

	house := &House{BaseModel: BaseModel{ID: 7}}
	full := RefHouse(house)
	if !full.Resolved() {
		t.Error("full ref reports unresolved")
	}
	if full.HouseID() != 7 {
		t.Errorf("HouseID = %d, want 7", full.HouseID())
	}

	if RefHouse(nil).Resolved() {
		t.Error("nil house ref reports resolved")
	}
}
