package domain

import (
	"github.com/disgoorg/snowflake/v2"
)

// OwnershipRecord is the durable proof that a user owns a team channel set.
//
// CategoryID is the deletion anchor: removing the category remotely cascades
// to the child text and voice channels, so no child ids are tracked.
type OwnershipRecord struct {
	Owner       snowflake.ID `json:"owner"`
	DisplayName string       `json:"display_name"`
	CategoryID  snowflake.ID `json:"category_id"`
}
