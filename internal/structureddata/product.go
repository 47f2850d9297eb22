package structureddata

import (
	"encoding/json"
	"strconv"
)

// TypeProduct is the schema.org type emitted by Product.
const TypeProduct = "Product"

// Availability is a schema.org ItemAvailability value.
type Availability string

const (
	InStock    Availability = "https://schema.org/InStock"
	OutOfStock Availability = "https://schema.org/OutOfStock"
	PreOrder   Availability = "https://schema.org/PreOrder"
)

// Product describes something sold by the bakery, typically a cake or a
// pastry box.
type Product struct {
	Name        string
	Description string
	URL         string
	SKU         string
	Brand       string
	Images      []string
	Offers      []Offer
}

// Offer is a price point for a Product.
type Offer struct {
	Price        float64
	Currency     string
	Availability Availability
	URL          string
}

// Type reports the schema.org type.
func (Product) Type() string { return TypeProduct }

type offerJSON struct {
	Type         string `json:"@type"`
	Price        string `json:"price"`
	Currency     string `json:"priceCurrency"`
	Availability string `json:"availability,omitempty"`
	URL          string `json:"url,omitempty"`
}

// MarshalJSON renders the product as JSON-LD. Prices are encoded as decimal
// strings with two fraction digits.
func (p Product) MarshalJSON() ([]byte, error) {
	offers := make([]offerJSON, 0, len(p.Offers))
	for _, offer := range p.Offers {
		offers = append(offers, offerJSON{
			Type:         "Offer",
			Price:        strconv.FormatFloat(offer.Price, 'f', 2, 64),
			Currency:     offer.Currency,
			Availability: string(offer.Availability),
			URL:          offer.URL,
		})
	}

	var brand *thingJSON
	if p.Brand != "" {
		brand = &thingJSON{Type: "Brand", Name: p.Brand}
	}

	return json.Marshal(struct {
		Context     string      `json:"@context"`
		Type        string      `json:"@type"`
		Name        string      `json:"name"`
		Description string      `json:"description,omitempty"`
		URL         string      `json:"url,omitempty"`
		SKU         string      `json:"sku,omitempty"`
		Brand       *thingJSON  `json:"brand,omitempty"`
		Image       []string    `json:"image,omitempty"`
		Offers      []offerJSON `json:"offers,omitempty"`
	}{
		Context:     Context,
		Type:        TypeProduct,
		Name:        p.Name,
		Description: p.Description,
		URL:         p.URL,
		SKU:         p.SKU,
		Brand:       brand,
		Image:       p.Images,
		Offers:      offers,
	})
}
