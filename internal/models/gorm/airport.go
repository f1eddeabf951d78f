package gorm

import "time"

// Airport is a destination referenced by flights
type Airport struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Code      string    `gorm:"column:code;type:varchar(10);not null;uniqueIndex" json:"code"`
	City      string    `gorm:"column:city;type:varchar(100);not null" json:"city"`
	Country   string    `gorm:"column:country;type:varchar(100);not null" json:"country"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	DestinationFlights []Flight `gorm:"foreignKey:DestinationAirportID" json:"-"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
