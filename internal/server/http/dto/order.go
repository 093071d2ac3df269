package dto

import "github.com/polkiloo/projectdesk/internal/domain/model"

// OrderRequest describes payload of POST /api/order.
type OrderRequest struct {
	Name          string        `json:"name" binding:"required"`
	Phone         string        `json:"phone" binding:"required"`
	Email         string        `json:"email" binding:"required"`
	ProjectType   string        `json:"projectType" binding:"required"`
	ProjectName   string        `json:"projectName"`
	Description   string        `json:"description" binding:"required"`
	PaymentMethod string        `json:"paymentMethod"`
	Price         *model.Amount `json:"price"`
	Urgency       string        `json:"urgency"`
}

// Input converts request into use case input.
func (r OrderRequest) Input() model.OrderInput {
	return model.OrderInput{
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		ProjectType:   r.ProjectType,
		ProjectName:   r.ProjectName,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		Price:         r.Price,
		Urgency:       r.Urgency,
	}
}

// OrderCreatedResponse acknowledges an accepted order.
type OrderCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
