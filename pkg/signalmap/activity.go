package signalmap

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/models"
)

const DefaultActivityListLimit = 100

type ActivityFilter struct {
	Type   string
	Entity string
	Limit  int
}

type ActivityEntry struct {
	Action      string
	Description string
	Type        models.ActivityType
	Entity      string
	EntityID    string
	UserID      string
	Details     models.JSONMap
}

func validActivityType(t models.ActivityType) bool {
	switch t {
	case models.ActivityTypeSite,
		models.ActivityTypePersonnel,
		models.ActivityTypeSystem,
		models.ActivityTypeOther,
		models.ActivityTypeReport:
		return true
	default:
		return false
	}
}

func (s *SignalMap) listActivities(filter *ActivityFilter) ([]models.ActivityLog, error) {
	query := s.Db.Conn.Model(&models.ActivityLog{})

	limit := DefaultActivityListLimit
	if filter != nil {
		if filter.Type != "" && filter.Type != "all" {
			query = query.Where("type = ?", filter.Type)
		}
		if filter.Entity != "" && filter.Entity != "all" {
			query = query.Where("entity = ?", filter.Entity)
		}
		if filter.Limit > 0 {
			limit = filter.Limit
		}
	}

	var logs []models.ActivityLog
	err := query.
		Order("timestamp desc, id desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (s *SignalMap) recordActivity(entry *ActivityEntry) (*models.ActivityLog, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryActivity),
	)

	if strings.TrimSpace(entry.Action) == "" ||
		strings.TrimSpace(entry.Description) == "" ||
		entry.Type == "" {
		return nil, NewValidationError("action, description and type are required")
	}

	if !validActivityType(entry.Type) {
		return nil, NewValidationError("invalid type %q", entry.Type)
	}

	userID := entry.UserID
	if userID == "" {
		userID = "system"
	}

	details := entry.Details
	if details == nil {
		details = models.JSONMap{}
	}

	log := models.ActivityLog{
		Action:      entry.Action,
		Description: entry.Description,
		Type:        entry.Type,
		Entity:      entry.Entity,
		EntityID:    entry.EntityID,
		UserID:      userID,
		Timestamp:   time.Now(),
		Details:     details,
	}

	if err := s.Db.Conn.Create(&log).Error; err != nil {
		return nil, err
	}

	logger.Info("Activity recorded",
		zap.Uint("id", log.ID),
		zap.String("action", log.Action),
		zap.String("type", string(log.Type)))

	return &log, nil
}

func (s *SignalMap) deleteActivity(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryActivity),
	)

	result := s.Db.Conn.Delete(&models.ActivityLog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	logger.Info("Activity log deleted", zap.Uint("id", id))

	return nil
}

type IActivityImpl struct {
	signalMap *SignalMap
}

func (ia *IActivityImpl) ListActivities(filter *ActivityFilter) ([]models.ActivityLog, error) {
	return ia.signalMap.listActivities(filter)
}

func (ia *IActivityImpl) RecordActivity(entry *ActivityEntry) (*models.ActivityLog, error) {
	return ia.signalMap.recordActivity(entry)
}

func (ia *IActivityImpl) DeleteActivity(id uint) error {
	return ia.signalMap.deleteActivity(id)
}

func (s *SignalMap) GetIActivity() IActivity {
	return &IActivityImpl{signalMap: s}
}
