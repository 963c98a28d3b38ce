package otodom

import (
	"slices"
)

// amenity tokens as the portal renders them
const (
	tokenBalcony    = "balkon"
	tokenKitchen    = "oddzielna kuchnia"
	tokenTerrace    = "taras"
	tokenInternet   = "internet"
	tokenElevator   = "winda"
	tokenCarParking = "garaż/miejsce parkingowe"
	tokenBasement   = "piwnica"
	tokenDuplex     = "dwupoziomowe"
	tokenGarden     = "ogródek"
	tokenCableTV    = "telewizja kablowa"
)

// apartment detail carrying the heating type
const heatingKey = "ogrzewanie"

// BuildAdditionalAssets derives the amenity flags from the amenity tokens
// and apartment details of a listing. When no apartment detail carries a
// value the result is left unpopulated.
func BuildAdditionalAssets(tokens []string, details []DetailPair) AdditionalAssets {
	truthy := false
	var heating *string
	for _, pair := range details {
		if pair.truthy() {
			truthy = true
		}
		if pair.Key == heatingKey && pair.Timestamp == nil {
			value := pair.Text
			heating = &value
		}
	}
	if !truthy {
		return AdditionalAssets{}
	}

	has := func(token string) bool {
		return slices.Contains(tokens, token)
	}
	return AdditionalAssets{
		Populated:       true,
		Heating:         heating,
		Balcony:         has(tokenBalcony),
		Kitchen:         has(tokenKitchen),
		Terrace:         has(tokenTerrace),
		Internet:        has(tokenInternet),
		Elevator:        has(tokenElevator),
		CarParking:      has(tokenCarParking),
		Basement:        has(tokenBasement),
		DuplexApartment: has(tokenDuplex),
		Garden:          has(tokenGarden),
		Garage:          has(tokenCarParking),
		CableTV:         has(tokenCableTV),
	}
}
