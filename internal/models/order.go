package models

// OrderStatusNew is the status every order is created with.
const OrderStatusNew = "New"

// Order represents a customer order. Besides the server-owned fields it
// carries whatever the caller sent (line items, customer data) untouched.
type Order struct {
	ID     int64
	Date   string
	Status string
	// Fields holds every other property. An id, date or status of an
	// unexpected type stays here too and is written back as it was.
	Fields map[string]any
}

// MarshalJSON flattens Fields next to id, date and status.
func (o Order) MarshalJSON() ([]byte, error) {
	return encodeObject(o.Fields,
		member{key: "id", value: o.ID, zero: o.ID == 0},
		member{key: "date", value: o.Date, zero: o.Date == ""},
		member{key: "status", value: o.Status, zero: o.Status == ""},
	)
}

// UnmarshalJSON splits a flat JSON object into the known fields and the
// pass-through remainder. It only fails when data is not an object.
func (o *Order) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data, "order")
	if err != nil {
		return err
	}

	*o = Order{}
	o.ID, _ = takeInt64(raw, "id")
	o.Date, _ = takeString(raw, "date")
	o.Status, _ = takeString(raw, "status")
	o.Fields = emptyToNil(raw)
	return nil
}
