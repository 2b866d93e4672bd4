package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// AvatarKey returns a fresh object key for an avatar of the user.
func AvatarKey(userID int64) string {
	return fmt.Sprintf("avatars/%d/%v", userID, uuid.New())
}
