package otodom

import (
	"encoding/json"
)

// ListingSummary is a single organic entry of a search result page.
type ListingSummary struct {
	DetailURL string `json:"detail_url"`
	// ListingID is the portal's internal id of the listing, "" when the
	// result item carries none.
	ListingID string `json:"offer_id"`
	Poster    string `json:"poster"`
}

// Coordinates are either both set or both nil.
type Coordinates struct {
	Latitude  *float64
	Longitude *float64
}

func (c Coordinates) Valid() bool {
	return c.Latitude != nil && c.Longitude != nil
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]*float64{c.Latitude, c.Longitude})
}

// DetailPair is a single "key: value" line of a detail block. Timestamp
// is set instead of Text when the value was recognized as a date.
type DetailPair struct {
	Key       string
	Text      string
	Timestamp *int64
}

func (p DetailPair) truthy() bool {
	if p.Timestamp != nil {
		return *p.Timestamp != 0
	}
	return p.Text != ""
}

func (p DetailPair) MarshalJSON() ([]byte, error) {
	if p.Timestamp != nil {
		return json.Marshal(map[string]int64{p.Key: *p.Timestamp})
	}
	return json.Marshal(map[string]string{p.Key: p.Text})
}

// OfferDetails is the offer detail block of a listing. A page without the
// block marshals to an empty object while a page with the block marshals
// to a (possibly empty) list of pairs, consumers rely on the difference.
type OfferDetails struct {
	Present bool
	Pairs   []DetailPair
}

func (d OfferDetails) MarshalJSON() ([]byte, error) {
	if !d.Present {
		return []byte("{}"), nil
	}
	if d.Pairs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.Pairs)
}

// AdditionalAssets are the amenity flags of an apartment. When Populated
// is false it marshals to an empty object, otherwise every flag is present.
type AdditionalAssets struct {
	Populated bool

	Heating         *string
	Balcony         bool
	Kitchen         bool
	Terrace         bool
	Internet        bool
	Elevator        bool
	CarParking      bool
	Basement        bool
	DuplexApartment bool
	Garden          bool
	Garage          bool
	CableTV         bool
}

func (a AdditionalAssets) MarshalJSON() ([]byte, error) {
	if !a.Populated {
		return []byte("{}"), nil
	}
	return json.Marshal(struct {
		Heating            *string `json:"heating"`
		Balcony            bool    `json:"balcony"`
		Kitchen            bool    `json:"kitchen"`
		Terrace            bool    `json:"terrace"`
		Internet           bool    `json:"internet"`
		Elevator           bool    `json:"elevator"`
		CarParking         bool    `json:"car_parking"`
		DisabledFacilities *bool   `json:"disabled_facilities"`
		Mezzanine          *bool   `json:"mezzanine"`
		Basement           bool    `json:"basement"`
		DuplexApartment    bool    `json:"duplex_apartment"`
		Garden             bool    `json:"garden"`
		Garage             bool    `json:"garage"`
		CableTV            bool    `json:"cable_tv"`
	}{
		Heating:         a.Heating,
		Balcony:         a.Balcony,
		Kitchen:         a.Kitchen,
		Terrace:         a.Terrace,
		Internet:        a.Internet,
		Elevator:        a.Elevator,
		CarParking:      a.CarParking,
		Basement:        a.Basement,
		DuplexApartment: a.DuplexApartment,
		Garden:          a.Garden,
		Garage:          a.Garage,
		CableTV:         a.CableTV,
	})
}

// Apartment holds the apartment specific fields of a listing.
type Apartment struct {
	Surface          *float64         `json:"surface"`
	Rooms            *int             `json:"rooms"`
	Floor            *int             `json:"floor"`
	TotalFloors      *int             `json:"total_floors"`
	ApartmentDetails []DetailPair     `json:"apartment_details"`
	AdditionalAssets AdditionalAssets `json:"additional_assets"`
}

// Meta carries the session artifacts of the detail page fetch.
type Meta struct {
	Cookie    string          `json:"cookie"`
	CSRFToken string          `json:"csrf_token"`
	Context   *ListingSummary `json:"context"`
}

// ListingRecord is everything extracted from a single detail page.
type ListingRecord struct {
	Title               string       `json:"title"`
	Address             string       `json:"address"`
	PosterName          string       `json:"poster_name"`
	PosterType          string       `json:"poster_type"`
	Price               *float64     `json:"price"`
	Currency            string       `json:"currency"`
	City                string       `json:"city"`
	District            string       `json:"district"`
	Voivodeship         string       `json:"voivodeship"`
	Coordinates         Coordinates  `json:"geographical_coordinates"`
	PhoneNumbers        []string     `json:"phone_numbers"`
	Description         string       `json:"description"`
	OfferDetails        OfferDetails `json:"offer_details"`
	PhotoLinks          []string     `json:"photo_links"`
	VideoLink           string       `json:"video_link"`
	WalkaroundLink      string       `json:"walkaround_3d_link"`
	FacebookDescription string       `json:"facebook_description"`
	Meta                Meta         `json:"meta"`

	// nil unless at least one apartment field carries a value
	*Apartment
}
