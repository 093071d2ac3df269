package model

import "time"

// OrderStatus is an informational label; orders have no processing lifecycle.
type OrderStatus string

const OrderStatusNew OrderStatus = "new"

// Order is a customer's project commission request.
type Order struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	Email         string      `json:"email"`
	ProjectType   string      `json:"projectType"`
	ProjectName   string      `json:"projectName,omitempty"`
	Description   string      `json:"description"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Price         *Amount     `json:"price,omitempty"`
	Urgency       string      `json:"urgency,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
	Status        OrderStatus `json:"status"`
}

// OrderInput carries client supplied order fields.
type OrderInput struct {
	Name          string
	Phone         string
	Email         string
	ProjectType   string
	ProjectName   string
	Description   string
	PaymentMethod string
	Price         *Amount
	Urgency       string
}
