package item

import (
	"time"
)

// Item is a single stored record. Identifiers are assigned by the
// repository on creation and never reused. Values returned to callers
// are snapshots; mutation happens only through the service.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Draft holds the fields of an item before it is created.
type Draft struct {
	Name        string
	Description string
}

// Patch is a partial update. A nil field means "leave unchanged"; a
// pointer to an empty string is an explicit empty value. This keeps
// "absent" and "empty" distinguishable through the whole update path.
type Patch struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}
