package signalmap_test

import (
	. "github.com/AljayDinoy69/bohol/pkg/signalmap"

	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppConfigDefaults(t *testing.T) {
	store := NewAppConfigStore()

	config := store.Get()
	assert.Equal(t, "Bohol Site Monitoring", config.Site.Title)
	assert.Equal(t, 9, config.Map.DefaultZoom)
	assert.InDelta(t, 9.80, config.Map.DefaultCenter[0], 0.0001)
}

func TestAppConfigSectionReplace(t *testing.T) {
	store := NewAppConfigStore()
	original := store.Get()

	updated := store.Apply(AppConfigPatch{
		Site: &AppConfigSite{
			Title:   "Renamed Dashboard",
			Version: "3.0.0",
		},
	})

	// The patched section is replaced wholesale
	assert.Equal(t, "Renamed Dashboard", updated.Site.Title)
	assert.Equal(t, "3.0.0", updated.Site.Version)
	assert.Empty(t, updated.Site.Description)

	// Untouched sections keep their previous values
	assert.Equal(t, original.Contact, updated.Contact)
	assert.Equal(t, original.About, updated.About)
	assert.Equal(t, original.Map, updated.Map)

	// A second read observes the applied config
	assert.Equal(t, updated, store.Get())
}
