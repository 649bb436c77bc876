package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ScoreMap maps a category name (cabin, bridge, food, crew...) to its
// sub-record, canonically {"score": <number>}. Values stay untyped because
// older store records carry malformed entries ("n/a" strings, bare numbers)
// that must be tolerated, not rejected at decode time.
type ScoreMap map[string]any

// NewScores wraps plain category values into the stored sub-record shape.
func NewScores(categories map[string]float64) ScoreMap {
	m := make(ScoreMap, len(categories))
	for name, v := range categories {
		m[name] = map[string]any{"score": v}
	}
	return m
}

// Value / Scan persist the map as a JSON column under the GORM backends.
func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *ScoreMap) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = ScoreMap{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("scores: cannot scan %T", src)
	}
}

// Rating is a pilot's structured evaluation of one ship.
//
// UserID is absent on records written before accounts had stable ids; those
// carry only UserName, the free-text handle, which still participates in
// ownership matching. CreatedAt is the canonical timestamp; Date is the
// legacy string field older records may carry instead. The store field
// names (userId, userName, createdAt, date, scores) are load-bearing and
// must not be renamed.
type Rating struct {
	ID        string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	ShipID    string    `json:"ship_id" bson:"shipId" gorm:"type:varchar(36);index:idx_rating_ship;not null"`
	UserID    string    `json:"user_id,omitempty" bson:"userId,omitempty" gorm:"type:varchar(36);index:idx_rating_user"`
	UserName  string    `json:"user_name,omitempty" bson:"userName,omitempty" gorm:"type:varchar(255)"`
	Scores    ScoreMap  `json:"scores" bson:"scores" gorm:"type:text"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"createdAt,omitempty" gorm:"autoCreateTime:false"`
	Date      string    `json:"date,omitempty" bson:"date,omitempty" gorm:"type:varchar(64)"`
}

func (Rating) TableName() string { return "ratings" }
