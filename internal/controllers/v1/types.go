package v1

import (
	"github.com/expense-guard/backend/internal/types"
	eg_uuid "github.com/expense-guard/backend/internal/uuid"
)

type URIID struct {
	ID eg_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month types.Month `uri:"month" binding:"required" example:"2024-06"` // Year and month in YYYY-MM format
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2024-06"` // Year and month in YYYY-MM format
}
