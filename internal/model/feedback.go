package model

import "time"

// Feedback is a free-form message from a pilot to the app team.
type Feedback struct {
	ID        string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id,omitempty" bson:"userId,omitempty" gorm:"type:varchar(36);index"`
	Subject   string    `json:"subject" bson:"subject" gorm:"type:varchar(255);not null"`
	Message   string    `json:"message" bson:"message" gorm:"type:text;not null"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

func (Feedback) TableName() string { return "feedback" }
