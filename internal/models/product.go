package models

import "sort"

// DefaultProductImage is the icon used when a product is created without one.
const DefaultProductImage = "fas fa-tshirt"

// Product represents a catalog item. Properties beyond the typed ones are
// kept in Fields and stored as sent.
type Product struct {
	ID       int64
	Name     string  `validate:"max=200"`
	Price    float64 `validate:"gte=0"`
	Category string
	Stock    int `validate:"gte=0"`
	Image    string
	// Fields holds every other property. A typed property that is null or
	// of another type stays here under its own key and wins over the zero
	// typed value.
	Fields map[string]any
}

// productTyped lists the typed properties that a caller may write.
var productTyped = []string{"name", "price", "category", "stock", "image"}

// MarshalJSON flattens Fields next to the typed properties.
func (p Product) MarshalJSON() ([]byte, error) {
	return encodeObject(p.Fields,
		member{key: "id", value: p.ID, zero: p.ID == 0},
		member{key: "name", value: p.Name, zero: p.Name == ""},
		member{key: "price", value: p.Price, zero: p.Price == 0},
		member{key: "category", value: p.Category, zero: p.Category == ""},
		member{key: "stock", value: p.Stock, zero: p.Stock == 0},
		member{key: "image", value: p.Image, zero: p.Image == ""},
	)
}

// UnmarshalJSON splits a flat JSON object into the typed properties and the
// pass-through remainder. It only fails when data is not an object, so a
// stored catalog with unexpected values still loads.
func (p *Product) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data, "product")
	if err != nil {
		return err
	}

	*p = Product{}
	p.ID, _ = takeInt64(raw, "id")
	p.Name, _ = takeString(raw, "name")
	p.Price, _ = takeFloat(raw, "price")
	p.Category, _ = takeString(raw, "category")
	if stock, ok := takeInt64(raw, "stock"); ok {
		p.Stock = int(stock)
	}
	p.Image, _ = takeString(raw, "image")
	p.Fields = emptyToNil(raw)
	return nil
}

// Mistyped returns the typed properties that were supplied with a value of
// another type. Null is not mistyped.
func (p Product) Mistyped() []string {
	return mistyped(p.Fields)
}

// clear zeroes the typed property behind key so that a value kept in Fields
// is the one written.
func (p *Product) clear(key string) {
	switch key {
	case "name":
		p.Name = ""
	case "price":
		p.Price = 0
	case "category":
		p.Category = ""
	case "stock":
		p.Stock = 0
	case "image":
		p.Image = ""
	}
}

// ProductPatch carries the properties of a partial update. Nil typed fields
// keep the stored value. It never carries an id: a product's id never
// changes.
type ProductPatch struct {
	Name     *string  `validate:"omitempty,max=200"`
	Price    *float64 `validate:"omitempty,gte=0"`
	Category *string
	Stock    *int `validate:"omitempty,gte=0"`
	Image    *string
	// Fields holds the other supplied properties, and typed ones sent as
	// null or with another type.
	Fields map[string]any
}

// UnmarshalJSON reads a partial product, dropping any id.
func (patch *ProductPatch) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data, "product")
	if err != nil {
		return err
	}
	delete(raw, "id")

	*patch = ProductPatch{}
	if v, ok := takeString(raw, "name"); ok {
		patch.Name = &v
	}
	if v, ok := takeFloat(raw, "price"); ok {
		patch.Price = &v
	}
	if v, ok := takeString(raw, "category"); ok {
		patch.Category = &v
	}
	if v, ok := takeInt64(raw, "stock"); ok {
		stock := int(v)
		patch.Stock = &stock
	}
	if v, ok := takeString(raw, "image"); ok {
		patch.Image = &v
	}
	patch.Fields = emptyToNil(raw)
	return nil
}

// Mistyped returns the typed properties that were supplied with a value of
// another type.
func (patch ProductPatch) Mistyped() []string {
	return mistyped(patch.Fields)
}

// Apply merges the supplied properties over p. Supplied values win,
// null included.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
		delete(p.Fields, "name")
	}
	if patch.Price != nil {
		p.Price = *patch.Price
		delete(p.Fields, "price")
	}
	if patch.Category != nil {
		p.Category = *patch.Category
		delete(p.Fields, "category")
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
		delete(p.Fields, "stock")
	}
	if patch.Image != nil {
		p.Image = *patch.Image
		delete(p.Fields, "image")
	}
	for k, v := range patch.Fields {
		if k == "id" {
			continue
		}
		if p.Fields == nil {
			p.Fields = make(map[string]any, len(patch.Fields))
		}
		p.Fields[k] = v
		p.clear(k)
	}
	p.Fields = emptyToNil(p.Fields)
}

func mistyped(fields map[string]any) []string {
	var keys []string
	for _, k := range productTyped {
		if v, ok := fields[k]; ok && v != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
