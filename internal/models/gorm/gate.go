package gorm

import "time"

// Gate is a boarding gate, identified by its code (e.g. "A1")
type Gate struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Code      string    `gorm:"column:code;type:varchar(10);not null;uniqueIndex" json:"code"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Flights []Flight `gorm:"foreignKey:GateID" json:"-"`
}

// TableName specifies the table name for GORM
func (Gate) TableName() string {
	return "gates"
}
