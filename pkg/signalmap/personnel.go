package signalmap

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/models"
)

type PersonnelInput struct {
	Name   string
	Role   string
	Email  string
	Status string
}

type PersonnelPatch struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Email  *string `json:"email"`
	Status *string `json:"status"`
}

func normalizePersonnelStatus(status string) (models.PersonnelStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active":
		return models.PersonnelStatusActive, true
	case "inactive":
		return models.PersonnelStatusInactive, true
	default:
		return "", false
	}
}

func (s *SignalMap) listPersonnel() ([]models.Personnel, error) {
	var personnel []models.Personnel
	err := s.Db.Conn.Find(&personnel).Error
	return personnel, err
}

func (s *SignalMap) createPersonnel(input *PersonnelInput) (*models.Personnel, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPersonnel),
	)

	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Role) == "" ||
		strings.TrimSpace(input.Email) == "" {
		return nil, NewValidationError("name, role and email are required")
	}

	status := models.PersonnelStatusActive
	if input.Status != "" {
		var ok bool
		if status, ok = normalizePersonnelStatus(input.Status); !ok {
			return nil, NewValidationError("invalid status %q", input.Status)
		}
	}

	person := models.Personnel{
		Name:   input.Name,
		Role:   input.Role,
		Email:  input.Email,
		Status: status,
	}

	if err := s.Db.Conn.Create(&person).Error; err != nil {
		return nil, err
	}

	logger.Info("Personnel created", zap.Uint("id", person.ID), zap.String("name", person.Name))

	s.logActivity(
		"Personnel Created",
		fmt.Sprintf("New personnel %q was added as %s", person.Name, person.Role),
		models.ActivityTypePersonnel,
		"personnel",
		fmt.Sprint(person.ID),
	)

	return &person, nil
}

func (s *SignalMap) updatePersonnel(id uint, patch *PersonnelPatch) (*models.Personnel, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPersonnel),
	)

	var person models.Personnel
	if err := s.Db.Conn.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, NewValidationError("name must not be empty")
		}
		// Renaming does not rewrite Site.assignedPersonnel references; existing
		// assignments to the old name surface as dangling on the next read.
		person.Name = *patch.Name
	}
	if patch.Role != nil {
		person.Role = *patch.Role
	}
	if patch.Email != nil {
		person.Email = *patch.Email
	}
	if patch.Status != nil {
		status, ok := normalizePersonnelStatus(*patch.Status)
		if !ok {
			return nil, NewValidationError("invalid status %q", *patch.Status)
		}
		person.Status = status
	}

	if err := s.Db.Conn.Save(&person).Error; err != nil {
		return nil, err
	}

	logger.Info("Personnel updated", zap.Uint("id", person.ID))

	s.logActivity(
		"Personnel Updated",
		fmt.Sprintf("Personnel %q was updated", person.Name),
		models.ActivityTypePersonnel,
		"personnel",
		fmt.Sprint(person.ID),
	)

	return &person, nil
}

func (s *SignalMap) deletePersonnel(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPersonnel),
	)

	// Sites referencing this personnel's name are left untouched; the
	// resolution layer reports them as dangling.
	result := s.Db.Conn.Delete(&models.Personnel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	logger.Info("Personnel deleted", zap.Uint("id", id))

	s.logActivity(
		"Personnel Deleted",
		fmt.Sprintf("Personnel was deleted (ID: %d)", id),
		models.ActivityTypePersonnel,
		"personnel",
		fmt.Sprint(id),
	)

	return nil
}

type IPersonnelImpl struct {
	signalMap *SignalMap
}

func (ip *IPersonnelImpl) ListPersonnel() ([]models.Personnel, error) {
	return ip.signalMap.listPersonnel()
}

func (ip *IPersonnelImpl) CreatePersonnel(input *PersonnelInput) (*models.Personnel, error) {
	return ip.signalMap.createPersonnel(input)
}

func (ip *IPersonnelImpl) UpdatePersonnel(id uint, patch *PersonnelPatch) (*models.Personnel, error) {
	return ip.signalMap.updatePersonnel(id, patch)
}

func (ip *IPersonnelImpl) DeletePersonnel(id uint) error {
	return ip.signalMap.deletePersonnel(id)
}

func (s *SignalMap) GetIPersonnel() IPersonnel {
	return &IPersonnelImpl{signalMap: s}
}
