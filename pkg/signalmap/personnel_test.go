package signalmap_test

import (
	. "github.com/AljayDinoy69/bohol/pkg/signalmap"

	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/models"
	_ "github.com/AljayDinoy69/bohol/pkg/testing"
)

func TestCreatePersonnelDefaults(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	name := "Tech-" + uuid.NewString()

	person, err := smObj.Personnel.CreatePersonnel(&PersonnelInput{
		Name:  name,
		Role:  "Field Technician",
		Email: name + "@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PersonnelStatusActive, person.Status)

	var entries []models.ActivityLog
	err = smObj.Db.Conn.
		Where("entity = ? AND entity_id = ?", "personnel", fmt.Sprint(person.ID)).
		Find(&entries).Error
	assert.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Personnel Created", entries[0].Action)
	assert.Equal(t, models.ActivityTypePersonnel, entries[0].Type)
}

func TestCreatePersonnelValidation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	var before int64
	require.NoError(t, smObj.Db.Conn.Model(&models.Personnel{}).Count(&before).Error)

	_, err := smObj.Personnel.CreatePersonnel(&PersonnelInput{
		Name: "Tech-" + uuid.NewString(),
		Role: "Engineer",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = smObj.Personnel.CreatePersonnel(&PersonnelInput{
		Name:   "Tech-" + uuid.NewString(),
		Role:   "Engineer",
		Email:  "someone@example.com",
		Status: "retired",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	var after int64
	require.NoError(t, smObj.Db.Conn.Model(&models.Personnel{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestUpdatePersonnel(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	name := "Tech-" + uuid.NewString()
	person, err := smObj.Personnel.CreatePersonnel(&PersonnelInput{
		Name:  name,
		Role:  "Engineer",
		Email: name + "@example.com",
	})
	require.NoError(t, err)

	inactive := "inactive"
	updated, err := smObj.Personnel.UpdatePersonnel(person.ID, &PersonnelPatch{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, models.PersonnelStatusInactive, updated.Status)
	assert.Equal(t, name, updated.Name)

	bogus := "retired"
	_, err = smObj.Personnel.UpdatePersonnel(person.ID, &PersonnelPatch{Status: &bogus})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	role := "Supervisor"
	_, err = smObj.Personnel.UpdatePersonnel(99999999, &PersonnelPatch{Role: &role})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePersonnelNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	assert.ErrorIs(t, smObj.Personnel.DeletePersonnel(99999999), ErrNotFound)
}

func TestPersonnelRenameLeavesSiteReferences(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	oldName := "Tech-" + uuid.NewString()
	person, err := smObj.Personnel.CreatePersonnel(&PersonnelInput{
		Name:  oldName,
		Role:  "Engineer",
		Email: oldName + "@example.com",
	})
	require.NoError(t, err)

	site, err := smObj.Site.CreateSite(&SiteInput{
		Name:              "Site-" + uuid.NewString(),
		Location:          "Talibon",
		AssignedPersonnel: oldName,
	})
	require.NoError(t, err)

	newName := "Tech-" + uuid.NewString()
	_, err = smObj.Personnel.UpdatePersonnel(person.ID, &PersonnelPatch{Name: &newName})
	require.NoError(t, err)

	// The site still references the old name; the rename is not propagated
	var saved models.Site
	require.NoError(t, smObj.Db.Conn.First(&saved, site.ID).Error)
	assert.Equal(t, oldName, saved.AssignedPersonnel)
}
