package services

import (
	"fmt"
	"strconv"
	"strings"

	"society-billing-service/config"
)

// MarlasPerKanal converts between the two land-area units: 1 kanal = 20 marla.
const MarlasPerKanal = 20

// ParseHouseSize converts a free-text size descriptor of the form
// "<count> <unit>" into an area in marla. The unit must match "kanal"
// exactly to convert; any other unit (or none) is treated as marla.
// A non-numeric or non-positive count is rejected rather than letting a
// corrupted area reach charge arithmetic.
func ParseHouseSize(descriptor string) (int, error) {
	fields := strings.Fields(descriptor)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty descriptor", ErrInvalidSizeFormat)
	}

	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSizeFormat, fields[0])
	}
	if count <= 0 {
		return 0, fmt.Errorf("%w: area must be positive, got %d", ErrInvalidSizeFormat, count)
	}

	if len(fields) > 1 && fields[1] == "kanal" {
		return count * MarlasPerKanal, nil
	}
	return count, nil
}

// Charges is the breakdown of a single monthly bill.
type Charges struct {
	MasjidFund     int
	GuardService   int
	StreetLighting int
	Gardener       int
	Amount         int
}

// ChargeCalculator derives bill charges from a house area in marla using
// the configured tariff. The four service components carry the same
// per-marla rate and sum exactly to the total; config.ValidateTariff
// guarantees that at startup.
type ChargeCalculator struct {
	ServiceRate int
	TotalRate   int
}

// NewChargeCalculator creates a charge calculator from the tariff config
func NewChargeCalculator(cfg *config.Config) *ChargeCalculator {
	return &ChargeCalculator{
		ServiceRate: cfg.ServiceRate,
		TotalRate:   cfg.TotalRate,
	}
}

// Calculate returns the charge breakdown for an area in marla
func (c *ChargeCalculator) Calculate(marlas int) Charges {
	serviceCharge := marlas * c.ServiceRate
	return Charges{
		MasjidFund:     serviceCharge,
		GuardService:   serviceCharge,
		StreetLighting: serviceCharge,
		Gardener:       serviceCharge,
		Amount:         marlas * c.TotalRate,
	}
}
