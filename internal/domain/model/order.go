package model

// OrderItem is one ordered line item.
type OrderItem struct {
	Name string
}

// Payment holds the raw payment sub-record attached to an order.
type Payment struct {
	Method            string
	Status            string
	ConfirmedAt       string
	ConfirmationNotes string
}

// Order is a purchase record fetched for the authenticated customer.
// Status and Payment.Status carry raw backend codes; translation to
// display labels happens in the usecase layer.
type Order struct {
	OrderID    string
	ShopName   string
	Items      []OrderItem
	TotalPrice float64
	Status     string
	Payment    *Payment
	CreatedAt  string
}

// ItemNames returns the ordered item names in order.
func (o Order) ItemNames() []string {
	names := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		names = append(names, item.Name)
	}
	return names
}
