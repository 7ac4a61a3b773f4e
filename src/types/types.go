package types

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateUserRequestBody struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequestBody struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
}

// Fields returns the full replace set: a PUT applies every declared field
// whether or not the caller changed it.
func (b *UpdateUserRequestBody) Fields() map[string]any {
	return map[string]any{
		"username": b.Username,
		"email":    b.Email,
	}
}

// Pointer fields let zero values (price 0, is_valid false) pass `required`,
// which only rejects absent or null members.
type CreateTicketRequestBody struct {
	Name    string   `json:"name" binding:"required"`
	Price   *float64 `json:"price" binding:"required,gte=0"`
	IsValid *bool    `json:"is_valid" binding:"required"`
	UserID  *uint    `json:"user_id" binding:"omitempty,gte=1"`
}

type UpdateTicketRequestBody struct {
	Name    string   `json:"name" binding:"required"`
	Price   *float64 `json:"price" binding:"required,gte=0"`
	IsValid *bool    `json:"is_valid" binding:"required"`
	UserID  *uint    `json:"user_id" binding:"required,gte=1"`
}

func (b *UpdateTicketRequestBody) Fields() map[string]any {
	return map[string]any{
		"name":     b.Name,
		"price":    *b.Price,
		"is_valid": *b.IsValid,
		"user_id":  b.UserID,
	}
}

type BulkCreateTicketRequestBody struct {
	Name    string   `json:"name" binding:"required"`
	Price   *float64 `json:"price" binding:"required,gte=0"`
	IsValid *bool    `json:"is_valid" binding:"required"`
	Amount  int      `json:"amount" binding:"required,gte=10,lte=10000"`
	UserID  *uint    `json:"user_id" binding:"omitempty,gte=1"`
}

// BulkStatusPending marks an acknowledgement for work accepted but not yet
// done; it is the only value Status ever carries.
const BulkStatusPending = "pending"

// BulkCreateTicketResponse acknowledges either completed work (synchronous
// path, TicketsCreated set) or accepted work (deferred path, Status
// BulkStatusPending); it never claims completion that has not happened.
type BulkCreateTicketResponse struct {
	Success          bool   `json:"success"`
	TicketsCreated   int    `json:"tickets_created,omitempty"`
	Status           string `json:"status,omitempty"`
	TicketsRequested int    `json:"tickets_requested,omitempty"`
}

// Deferred reports whether the work was queued rather than completed.
func (r *BulkCreateTicketResponse) Deferred() bool {
	return r.Status == BulkStatusPending
}
