package signalmap

import (
	"time"

	"go.uber.org/zap"

	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/models"
)

// SignalWeights maps textual signal descriptors to the numeric proxies used
// when averaging. Configuration, not business truth; unknown descriptors are
// excluded from the average.
var SignalWeights = map[string]float64{
	"Strong":   90,
	"Moderate": 70,
	"Weak":     40,
}

const activityStatsScanLimit = 1000

type ActivityStats struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	Site      int `json:"site"`
	Personnel int `json:"personnel"`
}

type AnalyticsSnapshot struct {
	TotalSites            int           `json:"totalSites"`
	ActiveSites           int           `json:"activeSites"`
	UnstableSites         int           `json:"unstableSites"`
	UnavailableSites      int           `json:"unavailableSites"`
	AverageSignalStrength float64       `json:"averageSignalStrength"`
	LastUpdated           time.Time     `json:"lastUpdated"`
	Activity              ActivityStats `json:"activity"`
}

// snapshot recomputes all aggregates from full collection scans. There is no
// incremental maintenance and no caching; dashboard scale only.
func (s *SignalMap) snapshot() (*AnalyticsSnapshot, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSignalMapCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAnalytics),
	)

	var sites []models.Site
	if err := s.Db.Conn.Find(&sites).Error; err != nil {
		return nil, err
	}

	snap := AnalyticsSnapshot{
		TotalSites:  len(sites),
		LastUpdated: time.Now(),
	}

	for _, site := range sites {
		switch site.Status {
		case models.SiteStatusActive:
			snap.ActiveSites++
		case models.SiteStatusUnstable:
			snap.UnstableSites++
		case models.SiteStatusUnavailable:
			snap.UnavailableSites++
		}
	}

	type signalAcc struct {
		sum   float64
		count int
	}
	acc := common.Reducer(sites, func(acc signalAcc, site models.Site) signalAcc {
		if weight, ok := SignalWeights[site.Signal]; ok {
			acc.sum += weight
			acc.count++
		}
		return acc
	}, signalAcc{})
	if acc.count > 0 {
		snap.AverageSignalStrength = acc.sum / float64(acc.count)
	}

	if s.Activity != nil {
		logs, err := s.Activity.ListActivities(&ActivityFilter{Limit: activityStatsScanLimit})
		if err != nil {
			return nil, err
		}

		now := time.Now()
		todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		snap.Activity.Total = len(logs)
		for _, log := range logs {
			if !log.Timestamp.Before(todayStart) {
				snap.Activity.Today++
			}
			switch log.Type {
			case models.ActivityTypeSite:
				snap.Activity.Site++
			case models.ActivityTypePersonnel:
				snap.Activity.Personnel++
			}
		}
	}

	logger.Info("Analytics snapshot computed",
		zap.Int("total_sites", snap.TotalSites),
		zap.Int("activities", snap.Activity.Total))

	return &snap, nil
}

type IAnalyticsImpl struct {
	signalMap *SignalMap
}

func (ia *IAnalyticsImpl) Snapshot() (*AnalyticsSnapshot, error) {
	return ia.signalMap.snapshot()
}

func (s *SignalMap) GetIAnalytics() IAnalytics {
	return &IAnalyticsImpl{signalMap: s}
}
