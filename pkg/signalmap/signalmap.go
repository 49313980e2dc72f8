package signalmap

import (
	"go.uber.org/zap"

	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/db"
	"github.com/AljayDinoy69/bohol/pkg/models"
)

type ISite interface {
	ListSites(filter *SiteFilter) ([]SiteView, error)
	CreateSite(input *SiteInput) (*models.Site, error)
	UpdateSite(id uint, patch *SitePatch) (*models.Site, error)
	DeleteSite(id uint) error
}

type IPersonnel interface {
	ListPersonnel() ([]models.Personnel, error)
	CreatePersonnel(input *PersonnelInput) (*models.Personnel, error)
	UpdatePersonnel(id uint, patch *PersonnelPatch) (*models.Personnel, error)
	DeletePersonnel(id uint) error
}

type IActivity interface {
	ListActivities(filter *ActivityFilter) ([]models.ActivityLog, error)
	RecordActivity(entry *ActivityEntry) (*models.ActivityLog, error)
	DeleteActivity(id uint) error
}

type IAnalytics interface {
	Snapshot() (*AnalyticsSnapshot, error)
}

type ITown interface {
	ListTowns(filter *TownFilter) ([]models.Town, error)
	CreateTown(input *TownInput) (*models.Town, error)
	UpdateTown(id uint, patch *TownPatch) (*models.Town, error)
	DeleteTown(id uint) error
}

type SignalMap struct {
	Db        db.DB
	Site      ISite
	Personnel IPersonnel
	Activity  IActivity
	Analytics IAnalytics
	Town      ITown
	AppConfig *AppConfigStore
}

type ServiceOpts struct {
	Site      ISite
	Personnel IPersonnel
	Activity  IActivity
	Analytics IAnalytics
	Town      ITown
}

func (s *SignalMap) WithServices(opts ServiceOpts) *SignalMap {
	if opts.Site != nil {
		s.Site = opts.Site
	}
	if opts.Personnel != nil {
		s.Personnel = opts.Personnel
	}
	if opts.Activity != nil {
		s.Activity = opts.Activity
	}
	if opts.Analytics != nil {
		s.Analytics = opts.Analytics
	}
	if opts.Town != nil {
		s.Town = opts.Town
	}
	return s
}

// logActivity records an audit entry for a site/personnel mutation. The write
// is best-effort: a failure here must never fail the primary operation.
func (s *SignalMap) logActivity(action, description string, activityType models.ActivityType, entity, entityID string) {
	if s.Activity == nil {
		return
	}

	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryActivity),
	)

	_, err := s.Activity.RecordActivity(&ActivityEntry{
		Action:      action,
		Description: description,
		Type:        activityType,
		Entity:      entity,
		EntityID:    entityID,
		UserID:      "system",
	})
	if err != nil {
		logger.Warn("Activity log write failed",
			zap.String("action", action),
			zap.Error(err))
	}
}
