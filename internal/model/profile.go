package model

import "time"

// UserProfile holds account data plus the display handle used by the
// legacy ownership match on old ratings.
type UserProfile struct {
	ID           string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Email        string    `json:"email" bson:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Handle       string    `json:"handle" bson:"handle" gorm:"type:varchar(255);index"`
	PasswordHash string    `json:"-" bson:"passwordHash" gorm:"type:varchar(128);not null"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updatedAt"`
}

func (UserProfile) TableName() string { return "user_profiles" }
