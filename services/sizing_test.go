package services

import (
	"errors"
	"testing"

	"society-billing-service/config"
)

func TestParseHouseSize(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		want       int
		wantErr    bool
	}{
		{"plain marla", "10 marla", 10, false},
		{"single kanal", "1 kanal", 20, false},
		{"two kanal", "2 kanal", 40, false},
		{"bare number defaults to marla", "7", 7, false},
		{"unknown unit treated as marla", "5 acre", 5, false},
		{"capitalized unit not kanal", "1 Kanal", 1, false},
		{"extra whitespace", "  10   marla  ", 10, false},
		{"empty descriptor", "", 0, true},
		{"whitespace only", "   ", 0, true},
		{"non-numeric count", "ten marla", 0, true},
		{"zero area", "0 marla", 0, true},
		{"negative area", "-5 kanal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHouseSize(tt.descriptor)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHouseSize(%q) = %d, want error", tt.descriptor, got)
				}
				if !errors.Is(err, ErrInvalidSizeFormat) {
					t.Errorf("ParseHouseSize(%q) error = %v, want ErrInvalidSizeFormat", tt.descriptor, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHouseSize(%q) unexpected error: %v", tt.descriptor, err)
			}
			if got != tt.want {
				t.Errorf("ParseHouseSize(%q) = %d, want %d", tt.descriptor, got, tt.want)
			}
		})
	}
}

func TestChargeCalculator(t *testing.T) {
	cfg := &config.Config{ServiceRate: 25, TotalRate: 100}
	calc := NewChargeCalculator(cfg)

	tests := []struct {
		name        string
		marlas      int
		wantService int
		wantAmount  int
	}{
		{"ten marla", 10, 250, 1000},
		{"one marla", 1, 25, 100},
		{"one kanal equivalent", 20, 500, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charges := calc.Calculate(tt.marlas)

			if charges.Amount != tt.wantAmount {
				t.Errorf("Amount = %d, want %d", charges.Amount, tt.wantAmount)
			}
			for field, got := range map[string]int{
				"MasjidFund":     charges.MasjidFund,
				"GuardService":   charges.GuardService,
				"StreetLighting": charges.StreetLighting,
				"Gardener":       charges.Gardener,
			} {
				if got != tt.wantService {
					t.Errorf("%s = %d, want %d", field, got, tt.wantService)
				}
			}

			sum := charges.MasjidFund + charges.GuardService + charges.StreetLighting + charges.Gardener
			if sum != charges.Amount {
				t.Errorf("component sum = %d, want %d", sum, charges.Amount)
			}
		})
	}
}

func TestParseBillDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"full date", "2026-08-10", false},
		{"month only", "2026-08", false},
		{"garbage", "August 2026", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBillDate(tt.value)
			if tt.wantErr && !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseBillDate(%q) error = %v, want ErrInvalidDate", tt.value, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ParseBillDate(%q) unexpected error: %v", tt.value, err)
			}
		})
	}
}
