package users

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, hide in json
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
