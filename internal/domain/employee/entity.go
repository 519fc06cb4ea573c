package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProfileImage is assigned to new employees until a picture is uploaded.
const DefaultProfileImage = "default-avatar.jpg"

type Employee struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Position      string
	Department    string
	DateOfJoining time.Time
	Salary        decimal.Decimal
	Profile       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
