package gorm

import "time"

// Flight is a scheduled departure. DepartureDate and DepartureTime are stored
// as "2006-01-02" / "15:04:05" strings; zero-padded, so string comparison
// matches chronological order. The flight number is unique globally, not
// per day.
type Flight struct {
	ID                   uint   `gorm:"column:id;primaryKey" json:"id"`
	FlightNumber         string `gorm:"column:flight_number;type:varchar(50);not null;uniqueIndex" json:"flight_number"`
	DepartureTime        string `gorm:"column:departure_time;type:time;not null" json:"departure_time"`
	DepartureDate        string `gorm:"column:departure_date;type:date;not null;index" json:"departure_date"`
	AirlineID            uint   `gorm:"column:airline_id;not null;index" json:"airline_id"`
	DestinationAirportID uint   `gorm:"column:destination_airport_id;not null;index" json:"destination_airport_id"`
	GateID               uint   `gorm:"column:gate_id;not null;index" json:"gate_id"`
	StatusID             uint   `gorm:"column:status_id;not null;index" json:"status_id"`
	UserID               uint   `gorm:"column:user_id;not null;index" json:"user_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships. Deleting any referenced row cascades to the flight.
	Airline            Airline      `gorm:"foreignKey:AirlineID;constraint:OnDelete:CASCADE" json:"airline,omitzero"`
	DestinationAirport Airport      `gorm:"foreignKey:DestinationAirportID;constraint:OnDelete:CASCADE" json:"destination_airport,omitzero"`
	Gate               Gate         `gorm:"foreignKey:GateID;constraint:OnDelete:CASCADE" json:"gate,omitzero"`
	Status             FlightStatus `gorm:"foreignKey:StatusID;constraint:OnDelete:CASCADE" json:"status,omitzero"`
	User               User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitzero"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
