package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type SiteStatus string

const (
	SiteStatusActive      SiteStatus = "Active"
	SiteStatusUnstable    SiteStatus = "Unstable"
	SiteStatusUnavailable SiteStatus = "Unavailable"
)

type PersonnelStatus string

const (
	PersonnelStatusActive   PersonnelStatus = "Active"
	PersonnelStatusInactive PersonnelStatus = "Inactive"
)

type ActivityType string

const (
	ActivityTypeSite      ActivityType = "site"
	ActivityTypePersonnel ActivityType = "personnel"
	ActivityTypeSystem    ActivityType = "system"
	ActivityTypeOther     ActivityType = "other"
	ActivityTypeReport    ActivityType = "report"
)

// JSONMap stores a free-form details object as a JSON text column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type for JSONMap: %T", value)
	}
}

type Site struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Name              string     `gorm:"uniqueIndex" json:"name"`
	LocationName      string     `json:"location"`
	Lat               float64    `json:"lat"`
	Lng               float64    `json:"lng"`
	Municipality      string     `gorm:"index" json:"municipality"`
	Status            SiteStatus `gorm:"type:varchar(20);index" json:"status"`
	Signal            string     `json:"signal"`
	AssignedPersonnel string     `json:"assignedPersonnel"`
	LastCheck         string     `json:"lastCheck"`
	LastUpdated       time.Time  `json:"lastUpdated"`
}

type Personnel struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"index" json:"name"`
	Role      string          `json:"role"`
	Email     string          `json:"email"`
	Status    PersonnelStatus `gorm:"type:varchar(20)" json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ActivityLog struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Action      string       `json:"action"`
	Description string       `json:"description"`
	Type        ActivityType `gorm:"type:varchar(20);index" json:"type"`
	Entity      string       `gorm:"index" json:"entity"`
	EntityID    string       `json:"entityId"`
	UserID      string       `json:"userId"`
	Timestamp   time.Time    `gorm:"index" json:"timestamp"`
	Details     JSONMap      `gorm:"type:text" json:"details"`
}

type Town struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index" json:"name"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	District  int       `gorm:"index" json:"district"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
