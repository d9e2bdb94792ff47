package order

import "github.com/shopspring/decimal"

// Destination carries the delivery hints the customer supplied: an optional
// maps link, optional coordinates, and a free-form address note. The core
// stores these for the courier but never interprets them; geolocation logic
// lives outside this system.
type Destination struct {
	mapsLink    string
	latitude    *decimal.Decimal
	longitude   *decimal.Decimal
	addressNote string
}

// NewDestination builds a Destination. All fields are optional hints and no
// validation is applied.
func NewDestination(mapsLink string, latitude, longitude *decimal.Decimal, addressNote string) Destination {
	return Destination{
		mapsLink:    mapsLink,
		latitude:    copyDecimal(latitude),
		longitude:   copyDecimal(longitude),
		addressNote: addressNote,
	}
}

// MapsLink returns the customer-supplied maps URL, if any.
func (d Destination) MapsLink() string {
	return d.mapsLink
}

// Latitude returns the latitude hint, or nil.
func (d Destination) Latitude() *decimal.Decimal {
	return copyDecimal(d.latitude)
}

// Longitude returns the longitude hint, or nil.
func (d Destination) Longitude() *decimal.Decimal {
	return copyDecimal(d.longitude)
}

// AddressNote returns the free-form address reference.
func (d Destination) AddressNote() string {
	return d.addressNote
}

func copyDecimal(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
