package signalmap_test

import (
	. "github.com/AljayDinoy69/bohol/pkg/signalmap"

	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AljayDinoy69/bohol/pkg/common"
	_ "github.com/AljayDinoy69/bohol/pkg/testing"
)

func TestListTownsSeedsOnce(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	towns, err := smObj.Town.ListTowns(nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(towns), len(BoholTowns))

	names := map[string]bool{}
	for _, town := range towns {
		names[town.Name] = true
	}
	assert.True(t, names["Tagbilaran City"])
	assert.True(t, names["Jagna"])

	// A second list must not reseed
	again, err := smObj.Town.ListTowns(nil)
	require.NoError(t, err)
	assert.Len(t, again, len(towns))
}

func TestListTownsFilters(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	towns, err := smObj.Town.ListTowns(&TownFilter{District: 2})
	require.NoError(t, err)
	require.NotEmpty(t, towns)
	for _, town := range towns {
		assert.Equal(t, 2, town.District)
	}

	towns, err = smObj.Town.ListTowns(&TownFilter{Search: "tagb"})
	require.NoError(t, err)
	require.NotEmpty(t, towns)
	assert.Equal(t, "Tagbilaran City", towns[0].Name)
}

func TestCreateUpdateDeleteTown(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := smObj.Town.CreateTown(&TownInput{Name: "", District: 1})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	town, err := smObj.Town.CreateTown(&TownInput{
		Name:     "Town-" + uuid.NewString(),
		Lat:      9.7,
		Lng:      124.1,
		District: 1,
	})
	require.NoError(t, err)

	lat := 9.71
	updated, err := smObj.Town.UpdateTown(town.ID, &TownPatch{Lat: &lat})
	require.NoError(t, err)
	assert.InDelta(t, 9.71, updated.Lat, 0.0001)
	assert.Equal(t, town.Name, updated.Name)

	require.NoError(t, smObj.Town.DeleteTown(town.ID))
	assert.ErrorIs(t, smObj.Town.DeleteTown(town.ID), ErrNotFound)

	_, err = smObj.Town.UpdateTown(99999999, &TownPatch{Lat: &lat})
	assert.ErrorIs(t, err, ErrNotFound)
}
