package signalmap

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/models"
)

type TownFilter struct {
	District int
	Search   string
}

type TownInput struct {
	Name     string
	Lat      float64
	Lng      float64
	District int
}

type TownPatch struct {
	Name     *string  `json:"name"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	District *int     `json:"district"`
}

// boholTowns is the canonical seed data, grouped by congressional district.
var boholTowns = []models.Town{
	// First District
	{Name: "Tagbilaran City", Lat: 9.6399, Lng: 123.8543, District: 1},
	{Name: "Alburquerque", Lat: 9.6081, Lng: 123.9575, District: 1},
	{Name: "Antequera", Lat: 9.7828, Lng: 123.8997, District: 1},
	{Name: "Baclayon", Lat: 9.6222, Lng: 123.9111, District: 1},
	{Name: "Balilihan", Lat: 9.7547, Lng: 123.9694, District: 1},
	{Name: "Calape", Lat: 9.8911, Lng: 123.8825, District: 1},
	{Name: "Catigbian", Lat: 9.8294, Lng: 124.0225, District: 1},
	{Name: "Corella", Lat: 9.6869, Lng: 123.9222, District: 1},
	{Name: "Cortes", Lat: 9.6911, Lng: 123.8825, District: 1},
	{Name: "Dauis", Lat: 9.6283, Lng: 123.8689, District: 1},
	{Name: "Loon", Lat: 9.7997, Lng: 123.8017, District: 1},
	{Name: "Maribojoc", Lat: 9.7431, Lng: 123.8422, District: 1},
	{Name: "Panglao", Lat: 9.5806, Lng: 123.7486, District: 1},
	{Name: "Sikatuna", Lat: 9.6914, Lng: 123.9725, District: 1},
	{Name: "Tubigon", Lat: 9.9514, Lng: 123.9639, District: 1},

	// Second District
	{Name: "Bien Unido", Lat: 10.1692, Lng: 124.3311, District: 2},
	{Name: "Buenavista", Lat: 10.0822, Lng: 124.1106, District: 2},
	{Name: "Clarin", Lat: 9.9614, Lng: 124.0253, District: 2},
	{Name: "Dagohoy", Lat: 9.9239, Lng: 124.2697, District: 2},
	{Name: "Danao", Lat: 10.0019, Lng: 124.2014, District: 2},
	{Name: "Getafe", Lat: 10.1472, Lng: 124.1528, District: 2},
	{Name: "Inabanga", Lat: 10.0039, Lng: 124.0725, District: 2},
	{Name: "Pres. Carlos P. Garcia", Lat: 10.1206, Lng: 124.4842, District: 2},
	{Name: "Sagbayan", Lat: 9.9208, Lng: 124.1086, District: 2},
	{Name: "San Isidro", Lat: 9.8894, Lng: 123.9931, District: 2},
	{Name: "San Miguel", Lat: 9.9889, Lng: 124.3456, District: 2},
	{Name: "Talibon", Lat: 10.1489, Lng: 124.3325, District: 2},
	{Name: "Trinidad", Lat: 10.0889, Lng: 124.3344, District: 2},
	{Name: "Ubay", Lat: 10.0572, Lng: 124.4719, District: 2},

	// Third District
	{Name: "Alicia", Lat: 9.8978, Lng: 124.4419, District: 3},
	{Name: "Anda", Lat: 9.7444, Lng: 124.5761, District: 3},
	{Name: "Batuan", Lat: 9.7864, Lng: 124.1503, District: 3},
	{Name: "Bilar", Lat: 9.7153, Lng: 124.1136, District: 3},
	{Name: "Candijay", Lat: 9.8411, Lng: 124.5458, District: 3},
	{Name: "Carmen", Lat: 9.8214, Lng: 124.1950, District: 3},
	{Name: "Dimiao", Lat: 9.6053, Lng: 124.1683, District: 3},
	{Name: "Duero", Lat: 9.6881, Lng: 124.3700, District: 3},
	{Name: "Garcia Hernandez", Lat: 9.6136, Lng: 124.2344, District: 3},
	{Name: "Guindulman", Lat: 9.7522, Lng: 124.4858, District: 3},
	{Name: "Jagna", Lat: 9.6517, Lng: 124.3683, District: 3},
	{Name: "Lila", Lat: 9.5911, Lng: 124.0989, District: 3},
	{Name: "Loay", Lat: 9.6031, Lng: 124.0117, District: 3},
	{Name: "Loboc", Lat: 9.6414, Lng: 124.0353, District: 3},
	{Name: "Mabini", Lat: 9.8631, Lng: 124.5222, District: 3},
	{Name: "Pilar", Lat: 9.8169, Lng: 124.3353, District: 3},
	{Name: "Sevilla", Lat: 9.7156, Lng: 124.0531, District: 3},
	{Name: "Sierra Bullones", Lat: 9.7844, Lng: 124.2881, District: 3},
	{Name: "Valencia", Lat: 9.6097, Lng: 124.2036, District: 3},
}

func (s *SignalMap) seedTowns() error {
	var count int64
	if err := s.Db.Conn.Model(&models.Town{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryTown),
	)

	towns := make([]models.Town, len(boholTowns))
	copy(towns, boholTowns)
	if err := s.Db.Conn.Create(&towns).Error; err != nil {
		return err
	}

	logger.Info("Bohol towns seeded", zap.Int("count", len(towns)))
	return nil
}

func (s *SignalMap) listTowns(filter *TownFilter) ([]models.Town, error) {
	if err := s.seedTowns(); err != nil {
		return nil, err
	}

	query := s.Db.Conn.Model(&models.Town{})
	if filter != nil {
		if filter.District != 0 {
			query = query.Where("district = ?", filter.District)
		}
		if filter.Search != "" {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
		}
	}

	var towns []models.Town
	err := query.Order("district asc, name asc").Find(&towns).Error
	return towns, err
}

func (s *SignalMap) createTown(input *TownInput) (*models.Town, error) {
	if strings.TrimSpace(input.Name) == "" || input.District == 0 {
		return nil, NewValidationError("name, lat, lng and district are required")
	}

	town := models.Town{
		Name:     input.Name,
		Lat:      input.Lat,
		Lng:      input.Lng,
		District: input.District,
	}
	if err := s.Db.Conn.Create(&town).Error; err != nil {
		return nil, err
	}
	return &town, nil
}

func (s *SignalMap) updateTown(id uint, patch *TownPatch) (*models.Town, error) {
	var town models.Town
	if err := s.Db.Conn.First(&town, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, NewValidationError("name must not be empty")
		}
		town.Name = *patch.Name
	}
	if patch.Lat != nil {
		town.Lat = *patch.Lat
	}
	if patch.Lng != nil {
		town.Lng = *patch.Lng
	}
	if patch.District != nil {
		town.District = *patch.District
	}

	if err := s.Db.Conn.Save(&town).Error; err != nil {
		return nil, err
	}
	return &town, nil
}

func (s *SignalMap) deleteTown(id uint) error {
	result := s.Db.Conn.Delete(&models.Town{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type ITownImpl struct {
	signalMap *SignalMap
}

func (it *ITownImpl) ListTowns(filter *TownFilter) ([]models.Town, error) {
	return it.signalMap.listTowns(filter)
}

func (it *ITownImpl) CreateTown(input *TownInput) (*models.Town, error) {
	return it.signalMap.createTown(input)
}

func (it *ITownImpl) UpdateTown(id uint, patch *TownPatch) (*models.Town, error) {
	return it.signalMap.updateTown(id, patch)
}

func (it *ITownImpl) DeleteTown(id uint) error {
	return it.signalMap.deleteTown(id)
}

func (s *SignalMap) GetITown() ITown {
	return &ITownImpl{signalMap: s}
}
