package model

import "fmt"

// Order is a storefront platform order, kept exactly as the platform sent it.
type Order map[string]any

// ID returns the order id as a string. The platform sends numeric ids.
func (o Order) ID() string {
	switch v := o["id"].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}

func (o Order) Name() string              { return o.str("name") }
func (o Order) Email() string             { return o.str("email") }
func (o Order) CreatedAt() string         { return o.str("created_at") }
func (o Order) FinancialStatus() string   { return o.str("financial_status") }
func (o Order) FulfillmentStatus() string { return o.str("fulfillment_status") }

func (o Order) str(key string) string {
	s, _ := o[key].(string)
	return s
}
