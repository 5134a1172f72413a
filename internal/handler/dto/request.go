package dto

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location" binding:"required"`
	Capacity    *int   `json:"capacity"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Kind        string `json:"kind" binding:"omitempty,oneof=public private"`
}

type BookRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CancelRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}
