package config

import "testing"

func TestValidateTariff(t *testing.T) {
	tests := []struct {
		name        string
		serviceRate int
		totalRate   int
		wantErr     bool
	}{
		{"default tariff", 25, 100, false},
		{"scaled tariff", 50, 200, false},
		{"components undershoot total", 20, 100, true},
		{"components overshoot total", 30, 100, true},
		{"zero rates", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ServiceRate: tt.serviceRate, TotalRate: tt.totalRate}
			err := cfg.ValidateTariff()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTariff(%d, %d) error = %v, wantErr %v", tt.serviceRate, tt.totalRate, err, tt.wantErr)
			}
		})
	}
}
