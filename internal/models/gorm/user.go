package gorm

import "time"

// User is an operator account. Password holds the bcrypt hash and is never
// serialized in responses.
type User struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Flights []Flight `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
