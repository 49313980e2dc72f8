package signalmap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/models"
)

type SiteFilter struct {
	Status       string
	Municipality string
	ID           uint
}

type SiteInput struct {
	Name              string
	Location          string
	Lat               float64
	Lng               float64
	Municipality      string
	Status            string
	Signal            string
	AssignedPersonnel string
	LastCheck         string
}

type SitePatch struct {
	Name              *string  `json:"name"`
	Location          *string  `json:"location"`
	Lat               *float64 `json:"lat"`
	Lng               *float64 `json:"lng"`
	Municipality      *string  `json:"municipality"`
	Status            *string  `json:"status"`
	Signal            *string  `json:"signal"`
	AssignedPersonnel *string  `json:"assignedPersonnel"`
	LastCheck         *string  `json:"lastCheck"`
}

// NormalizeSiteStatus folds the legacy status spellings into the canonical
// enum: Warning -> Unstable, Offline -> Unavailable.
func NormalizeSiteStatus(status string) (models.SiteStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active":
		return models.SiteStatusActive, true
	case "unstable", "warning":
		return models.SiteStatusUnstable, true
	case "unavailable", "offline":
		return models.SiteStatusUnavailable, true
	default:
		return "", false
	}
}

func (s *SignalMap) listSites(filter *SiteFilter) ([]SiteView, error) {
	query := s.Db.Conn.Model(&models.Site{})

	if filter != nil {
		if filter.ID != 0 {
			query = query.Where("id = ?", filter.ID)
		}
		if filter.Status != "" {
			status, ok := NormalizeSiteStatus(filter.Status)
			if !ok {
				return nil, NewValidationError("invalid status filter %q", filter.Status)
			}
			query = query.Where("status = ?", status)
		}
		if filter.Municipality != "" {
			query = query.Where("LOWER(municipality) LIKE ?",
				"%"+strings.ToLower(filter.Municipality)+"%")
		}
	}

	var sites []models.Site
	if err := query.Find(&sites).Error; err != nil {
		return nil, err
	}

	return s.resolveSites(sites)
}

func (s *SignalMap) createSite(input *SiteInput) (*models.Site, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySite),
	)

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Location) == "" {
		return nil, NewValidationError("name and location are required")
	}

	status := models.SiteStatusActive
	if input.Status != "" {
		var ok bool
		if status, ok = NormalizeSiteStatus(input.Status); !ok {
			return nil, NewValidationError("invalid status %q", input.Status)
		}
	}

	signal := input.Signal
	if signal == "" {
		signal = "Strong"
	}

	lastCheck := input.LastCheck
	if lastCheck == "" {
		lastCheck = time.Now().Format(time.RFC3339)
	}

	site := models.Site{
		Name:              input.Name,
		LocationName:      input.Location,
		Lat:               input.Lat,
		Lng:               input.Lng,
		Municipality:      input.Municipality,
		Status:            status,
		Signal:            signal,
		AssignedPersonnel: input.AssignedPersonnel,
		LastCheck:         lastCheck,
		LastUpdated:       time.Now(),
	}

	logger.Info("Creating site", zap.Reflect("site", site))

	if err := s.Db.Conn.Create(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateKeyError{Field: "name"}
		}
		return nil, err
	}

	logger.Info("Site created", zap.Uint("id", site.ID), zap.String("name", site.Name))

	s.logActivity(
		"Site Created",
		fmt.Sprintf("New site %q was created", site.Name),
		models.ActivityTypeSite,
		"site",
		fmt.Sprint(site.ID),
	)

	return &site, nil
}

func (s *SignalMap) updateSite(id uint, patch *SitePatch) (*models.Site, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySite),
	)

	var site models.Site
	if err := s.Db.Conn.First(&site, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, NewValidationError("name must not be empty")
		}
		site.Name = *patch.Name
	}
	if patch.Location != nil {
		if strings.TrimSpace(*patch.Location) == "" {
			return nil, NewValidationError("location must not be empty")
		}
		site.LocationName = *patch.Location
	}
	if patch.Lat != nil {
		site.Lat = *patch.Lat
	}
	if patch.Lng != nil {
		site.Lng = *patch.Lng
	}
	if patch.Municipality != nil {
		site.Municipality = *patch.Municipality
	}
	if patch.Status != nil {
		status, ok := NormalizeSiteStatus(*patch.Status)
		if !ok {
			return nil, NewValidationError("invalid status %q", *patch.Status)
		}
		site.Status = status
	}
	if patch.Signal != nil {
		site.Signal = *patch.Signal
	}
	if patch.AssignedPersonnel != nil {
		site.AssignedPersonnel = *patch.AssignedPersonnel
	}
	if patch.LastCheck != nil {
		site.LastCheck = *patch.LastCheck
	}
	site.LastUpdated = time.Now()

	if err := s.Db.Conn.Save(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateKeyError{Field: "name"}
		}
		return nil, err
	}

	logger.Info("Site updated", zap.Uint("id", site.ID), zap.String("status", string(site.Status)))

	s.logActivity(
		"Site Updated",
		fmt.Sprintf("Site %q was updated (Status: %s)", site.Name, site.Status),
		models.ActivityTypeSite,
		"site",
		fmt.Sprint(site.ID),
	)

	return &site, nil
}

func (s *SignalMap) deleteSite(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySite),
	)

	result := s.Db.Conn.Delete(&models.Site{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	logger.Info("Site deleted", zap.Uint("id", id))

	s.logActivity(
		"Site Deleted",
		fmt.Sprintf("Site was deleted (ID: %d)", id),
		models.ActivityTypeSite,
		"site",
		fmt.Sprint(id),
	)

	return nil
}

type ISiteImpl struct {
	signalMap *SignalMap
}

func (is *ISiteImpl) ListSites(filter *SiteFilter) ([]SiteView, error) {
	return is.signalMap.listSites(filter)
}

func (is *ISiteImpl) CreateSite(input *SiteInput) (*models.Site, error) {
	return is.signalMap.createSite(input)
}

func (is *ISiteImpl) UpdateSite(id uint, patch *SitePatch) (*models.Site, error) {
	return is.signalMap.updateSite(id, patch)
}

func (is *ISiteImpl) DeleteSite(id uint) error {
	return is.signalMap.deleteSite(id)
}

func (s *SignalMap) GetISite() ISite {
	return &ISiteImpl{signalMap: s}
}
