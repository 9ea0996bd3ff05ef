package domain

import "time"

// FuelType as carried on the vehicle reference data.
type FuelType string

const (
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeHybrid   FuelType = "hybrid"
	FuelTypeElectric FuelType = "electric"
)

// Vehicle is read-only reference data joined to quotes, overrides and
// competitor matches by ID (the industry-standard vehicle identifier).
type Vehicle struct {
	ID             string    `json:"id"`
	Manufacturer   string    `json:"manufacturer"`
	Model          string    `json:"model"`
	Variant        string    `json:"variant"`
	ListPriceMinor int64     `json:"list_price_minor"`
	FuelType       FuelType  `json:"fuel_type"`
	CO2GramsPerKM  int       `json:"co2_g_km"`
	Doors          int       `json:"doors"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
