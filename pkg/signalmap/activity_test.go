package signalmap_test

import (
	. "github.com/AljayDinoy69/bohol/pkg/signalmap"

	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/models"
	_ "github.com/AljayDinoy69/bohol/pkg/testing"
)

func TestRecordActivityDefaults(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	log, err := smObj.Activity.RecordActivity(&ActivityEntry{
		Action:      "Sweep Completed",
		Description: "Coverage sweep finished without incident",
		Type:        models.ActivityTypeSystem,
	})
	require.NoError(t, err)

	assert.Equal(t, "system", log.UserID)
	assert.NotNil(t, log.Details)
	assert.False(t, log.Timestamp.IsZero())
	assert.NotZero(t, log.ID)
}

func TestRecordActivityValidation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := smObj.Activity.RecordActivity(&ActivityEntry{
		Action: "Missing Description",
		Type:   models.ActivityTypeSystem,
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = smObj.Activity.RecordActivity(&ActivityEntry{
		Action:      "Bad Type",
		Description: "Type outside the enum",
		Type:        models.ActivityType("bogus"),
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestListActivitiesFilterAndOrder(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	entity := "entity-" + uuid.NewString()

	types := []models.ActivityType{
		models.ActivityTypeSite,
		models.ActivityTypePersonnel,
		models.ActivityTypeSite,
	}
	for i, typ := range types {
		_, err := smObj.Activity.RecordActivity(&ActivityEntry{
			Action:      "Step",
			Description: "step in sequence",
			Type:        typ,
			Entity:      entity,
			EntityID:    uuid.NewString(),
			Details:     models.JSONMap{"step": i},
		})
		require.NoError(t, err)
	}

	logs, err := smObj.Activity.ListActivities(&ActivityFilter{Entity: entity})
	require.NoError(t, err)
	require.Len(t, logs, 3)

	// Newest first
	assert.Greater(t, logs[0].ID, logs[1].ID)
	assert.Greater(t, logs[1].ID, logs[2].ID)

	logs, err = smObj.Activity.ListActivities(&ActivityFilter{Entity: entity, Type: "personnel"})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActivityTypePersonnel, logs[0].Type)

	// "all" is a pass-through, not a type value
	logs, err = smObj.Activity.ListActivities(&ActivityFilter{Entity: entity, Type: "all"})
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}

func TestListActivitiesLimit(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	entity := "entity-" + uuid.NewString()

	var lastID uint
	for i := 0; i < 3; i++ {
		log, err := smObj.Activity.RecordActivity(&ActivityEntry{
			Action:      "Ping",
			Description: "limit probe",
			Type:        models.ActivityTypeOther,
			Entity:      entity,
		})
		require.NoError(t, err)
		lastID = log.ID
	}

	logs, err := smObj.Activity.ListActivities(&ActivityFilter{Entity: entity, Limit: 2})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, lastID, logs[0].ID)
}

func TestDeleteActivity(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	log, err := smObj.Activity.RecordActivity(&ActivityEntry{
		Action:      "Disposable",
		Description: "to be deleted",
		Type:        models.ActivityTypeOther,
	})
	require.NoError(t, err)

	require.NoError(t, smObj.Activity.DeleteActivity(log.ID))
	assert.ErrorIs(t, smObj.Activity.DeleteActivity(log.ID), ErrNotFound)
}
