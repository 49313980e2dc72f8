package signalmap_test

import (
	. "github.com/AljayDinoy69/bohol/pkg/signalmap"

	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/AljayDinoy69/bohol/pkg/db"
	"github.com/AljayDinoy69/bohol/pkg/signalmap/mocks"
)

func GetMockSignalMapWithMemorySqliteDialector(t *testing.T, useMockISite, useMockIPersonnel, useMockIActivity bool) (
	*gomock.Controller,
	*SignalMap,
	*mocks.MockISite,
	*mocks.MockIPersonnel,
	*mocks.MockIActivity,
) {
	ctrl := gomock.NewController(t)

	mockISite := mocks.NewMockISite(ctrl)
	mockIPersonnel := mocks.NewMockIPersonnel(ctrl)
	mockIActivity := mocks.NewMockIActivity(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	smInstance := &SignalMap{Db: *dbInstance, AppConfig: NewAppConfigStore()}

	siteService := smInstance.GetISite()
	if useMockISite {
		siteService = mockISite
	}

	personnelService := smInstance.GetIPersonnel()
	if useMockIPersonnel {
		personnelService = mockIPersonnel
	}

	activityService := smInstance.GetIActivity()
	if useMockIActivity {
		activityService = mockIActivity
	}

	smInstance.WithServices(ServiceOpts{
		Site:      siteService,
		Personnel: personnelService,
		Activity:  activityService,
		Analytics: smInstance.GetIAnalytics(),
		Town:      smInstance.GetITown(),
	})

	return ctrl, smInstance, mockISite, mockIPersonnel, mockIActivity
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
