package structureddata

import "encoding/json"

// TypeBakery is the schema.org LocalBusiness subtype emitted by Bakery.
const TypeBakery = "Bakery"

// Bakery describes a physical shop location.
type Bakery struct {
	Name         string
	URL          string
	Image        string
	Telephone    string
	Email        string
	PriceRange   string
	Address      PostalAddress
	OpeningHours []string
	SameAs       []string
}

// PostalAddress is a schema.org PostalAddress.
type PostalAddress struct {
	StreetAddress string
	Locality      string
	Region        string
	PostalCode    string
	Country       string
}

// IsZero reports whether no address field is set.
func (a PostalAddress) IsZero() bool {
	return a == PostalAddress{}
}

// Type reports the schema.org type.
func (Bakery) Type() string { return TypeBakery }

type postalAddressJSON struct {
	Type          string `json:"@type"`
	StreetAddress string `json:"streetAddress,omitempty"`
	Locality      string `json:"addressLocality,omitempty"`
	Region        string `json:"addressRegion,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Country       string `json:"addressCountry,omitempty"`
}

// MarshalJSON renders the bakery as JSON-LD.
func (b Bakery) MarshalJSON() ([]byte, error) {
	var address *postalAddressJSON
	if !b.Address.IsZero() {
		address = &postalAddressJSON{
			Type:          "PostalAddress",
			StreetAddress: b.Address.StreetAddress,
			Locality:      b.Address.Locality,
			Region:        b.Address.Region,
			PostalCode:    b.Address.PostalCode,
			Country:       b.Address.Country,
		}
	}

	return json.Marshal(struct {
		Context      string             `json:"@context"`
		Type         string             `json:"@type"`
		Name         string             `json:"name"`
		URL          string             `json:"url,omitempty"`
		Image        string             `json:"image,omitempty"`
		Telephone    string             `json:"telephone,omitempty"`
		Email        string             `json:"email,omitempty"`
		PriceRange   string             `json:"priceRange,omitempty"`
		Address      *postalAddressJSON `json:"address,omitempty"`
		OpeningHours []string           `json:"openingHours,omitempty"`
		SameAs       []string           `json:"sameAs,omitempty"`
	}{
		Context:      Context,
		Type:         TypeBakery,
		Name:         b.Name,
		URL:          b.URL,
		Image:        b.Image,
		Telephone:    b.Telephone,
		Email:        b.Email,
		PriceRange:   b.PriceRange,
		Address:      address,
		OpeningHours: b.OpeningHours,
		SameAs:       b.SameAs,
	})
}
