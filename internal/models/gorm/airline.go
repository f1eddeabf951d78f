package gorm

import "time"

// Airline is a carrier operating flights on the board. Logo holds the stored
// file path of the uploaded logo, relative to the logo directory.
type Airline struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Code      string    `gorm:"column:code;type:varchar(10);not null;uniqueIndex" json:"code"`
	Logo      *string   `gorm:"column:logo;type:varchar(255)" json:"logo"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Flights []Flight `gorm:"foreignKey:AirlineID" json:"-"`
}

// TableName specifies the table name for GORM
func (Airline) TableName() string {
	return "airlines"
}
