package signalmap

import (
	"github.com/AljayDinoy69/bohol/pkg/common"
	"github.com/AljayDinoy69/bohol/pkg/models"
)

// AssignmentState classifies a site's assignedPersonnel reference at read
// time. "missing" means the name no longer resolves to a personnel record.
type AssignmentState string

const (
	AssignmentUnassigned AssignmentState = "unassigned"
	AssignmentAssigned   AssignmentState = "assigned"
	AssignmentMissing    AssignmentState = "missing"
)

type SiteView struct {
	models.Site
	AssignmentState AssignmentState `json:"assignmentState"`
}

// resolveSites reconciles assignedPersonnel names against the live personnel
// directory. The name index is built once per call, not per site.
func (s *SignalMap) resolveSites(sites []models.Site) ([]SiteView, error) {
	var personnel []models.Personnel
	if err := s.Db.Conn.Find(&personnel).Error; err != nil {
		return nil, err
	}

	byName := make(map[string]struct{}, len(personnel))
	for _, p := range personnel {
		byName[p.Name] = struct{}{}
	}

	return common.Mapper(sites, func(site models.Site) SiteView {
		state := AssignmentUnassigned
		if site.AssignedPersonnel != "" {
			if _, ok := byName[site.AssignedPersonnel]; ok {
				state = AssignmentAssigned
			} else {
				state = AssignmentMissing
			}
		}
		return SiteView{Site: site, AssignmentState: state}
	}), nil
}
