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

func TestSiteAssignmentResolution(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, smObj, _, _, _ := GetMockSignalMapWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	municipality := "Muni-" + uuid.NewString()
	techName := "Tech-" + uuid.NewString()

	person, err := smObj.Personnel.CreatePersonnel(&PersonnelInput{
		Name:  techName,
		Role:  "Field Technician",
		Email: techName + "@example.com",
	})
	require.NoError(t, err)

	assigned, err := smObj.Site.CreateSite(&SiteInput{
		Name:              "Site-" + uuid.NewString(),
		Location:          "Poblacion",
		Municipality:      municipality,
		AssignedPersonnel: techName,
	})
	require.NoError(t, err)

	unassigned, err := smObj.Site.CreateSite(&SiteInput{
		Name:         "Site-" + uuid.NewString(),
		Location:     "Poblacion",
		Municipality: municipality,
	})
	require.NoError(t, err)

	dangling, err := smObj.Site.CreateSite(&SiteInput{
		Name:              "Site-" + uuid.NewString(),
		Location:          "Poblacion",
		Municipality:      municipality,
		AssignedPersonnel: "Tech-" + uuid.NewString(),
	})
	require.NoError(t, err)

	views, err := smObj.Site.ListSites(&SiteFilter{Municipality: municipality})
	require.NoError(t, err)
	require.Len(t, views, 3)

	states := map[uint]AssignmentState{}
	for _, view := range views {
		states[view.ID] = view.AssignmentState
	}
	assert.Equal(t, AssignmentAssigned, states[assigned.ID])
	assert.Equal(t, AssignmentUnassigned, states[unassigned.ID])
	assert.Equal(t, AssignmentMissing, states[dangling.ID])

	// Deleting the personnel does not touch the site row; the reference
	// surfaces as dangling on the next read instead of failing.
	require.NoError(t, smObj.Personnel.DeletePersonnel(person.ID))

	views, err = smObj.Site.ListSites(&SiteFilter{ID: assigned.ID})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, AssignmentMissing, views[0].AssignmentState)
	assert.Equal(t, techName, views[0].AssignedPersonnel)
}
