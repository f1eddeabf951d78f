package gorm

import "time"

// FlightStatus is a display label for flights. It is an open lookup table,
// not an enum: operators may add statuses beyond the seeded six, and no
// transition rules are enforced between them.
type FlightStatus struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(50);not null;uniqueIndex" json:"name"`
	Color     string    `gorm:"column:color;type:varchar(7);not null" json:"color"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Flights []Flight `gorm:"foreignKey:StatusID" json:"-"`
}

// TableName specifies the table name for GORM
func (FlightStatus) TableName() string {
	return "flight_statuses"
}
