package model

import "time"

// Ship is a vessel record searchable by name. Owned by the store;
// read-only from the dashboard aggregation's perspective.
type Ship struct {
	ID        string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" bson:"name" gorm:"type:varchar(255);index:idx_ship_name;not null"`
	IMO       string    `json:"imo,omitempty" bson:"imo,omitempty" gorm:"type:varchar(16);index"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt" gorm:"not null"`
}

func (Ship) TableName() string { return "ships" }
