package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/AljayDinoy69/bohol/pkg/models"
	"github.com/AljayDinoy69/bohol/pkg/signalmap"
)

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, data any, total int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "total": total})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// respondError maps the domain error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a 500 with no internal detail leaked.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, signalmap.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
		return
	}
	if signalmap.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if dup, ok := signalmap.IsDuplicateKeyError(err); ok {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": dup.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
}

func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, signalmap.NewValidationError("invalid id %q", raw)
	}
	return uint(id), nil
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --- sites ---

type SiteCreateRequest struct {
	Name              string  `json:"name"`
	Location          string  `json:"location"`
	Lat               float64 `json:"lat"`
	Lng               float64 `json:"lng"`
	Municipality      string  `json:"municipality"`
	Status            string  `json:"status"`
	Signal            string  `json:"signal"`
	AssignedPersonnel string  `json:"assignedPersonnel"`
	LastCheck         string  `json:"lastCheck"`
}

var siteCreateRequestSchema = z.Struct(z.Shape{
	"Name":              z.String().Required(),
	"Location":          z.String().Required(),
	"Lat":               z.Float64(),
	"Lng":               z.Float64(),
	"Municipality":      z.String(),
	"Status":            z.String(),
	"Signal":            z.String(),
	"AssignedPersonnel": z.String(),
	"LastCheck":         z.String(),
})

func (rs *RestfulServer) ListSites(c *gin.Context) {
	filter := signalmap.SiteFilter{
		Status:       c.Query("status"),
		Municipality: c.Query("municipality"),
	}
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, signalmap.NewValidationError("invalid id %q", raw))
			return
		}
		filter.ID = uint(id)
	}

	sites, err := rs.SignalMap.Site.ListSites(&filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, sites, len(sites))
}

func (rs *RestfulServer) CreateSite(c *gin.Context) {
	var req SiteCreateRequest
	if err := siteCreateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	site, err := rs.SignalMap.Site.CreateSite(&signalmap.SiteInput{
		Name:              req.Name,
		Location:          req.Location,
		Lat:               req.Lat,
		Lng:               req.Lng,
		Municipality:      req.Municipality,
		Status:            req.Status,
		Signal:            req.Signal,
		AssignedPersonnel: req.AssignedPersonnel,
		LastCheck:         req.LastCheck,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, site)
}

func (rs *RestfulServer) UpdateSite(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var patch signalmap.SitePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, signalmap.NewValidationError("invalid request body"))
		return
	}

	site, err := rs.SignalMap.Site.UpdateSite(id, &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, site)
}

func (rs *RestfulServer) DeleteSite(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := rs.SignalMap.Site.DeleteSite(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "site deleted")
}

// --- personnel ---

type PersonnelCreateRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

var personnelCreateRequestSchema = z.Struct(z.Shape{
	"Name":   z.String().Required(),
	"Role":   z.String().Required(),
	"Email":  z.String().Required(),
	"Status": z.String(),
})

func (rs *RestfulServer) ListPersonnel(c *gin.Context) {
	personnel, err := rs.SignalMap.Personnel.ListPersonnel()
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, personnel, len(personnel))
}

func (rs *RestfulServer) CreatePersonnel(c *gin.Context) {
	var req PersonnelCreateRequest
	if err := personnelCreateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	person, err := rs.SignalMap.Personnel.CreatePersonnel(&signalmap.PersonnelInput{
		Name:   req.Name,
		Role:   req.Role,
		Email:  req.Email,
		Status: req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, person)
}

func (rs *RestfulServer) UpdatePersonnel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var patch signalmap.PersonnelPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, signalmap.NewValidationError("invalid request body"))
		return
	}

	person, err := rs.SignalMap.Personnel.UpdatePersonnel(id, &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, person)
}

func (rs *RestfulServer) DeletePersonnel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := rs.SignalMap.Personnel.DeletePersonnel(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "personnel deleted")
}

// --- activity logs ---

// Details is a freeform map, so the activity create request is bound with
// gin instead of a zog shape; required-field checks live in the service.
type ActivityCreateRequest struct {
	Action      string         `json:"action"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Entity      string         `json:"entity"`
	EntityID    string         `json:"entityId"`
	UserID      string         `json:"userId"`
	Details     models.JSONMap `json:"details"`
}

func (rs *RestfulServer) ListActivityLogs(c *gin.Context) {
	filter := signalmap.ActivityFilter{
		Type:   c.Query("type"),
		Entity: c.Query("entity"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondError(c, signalmap.NewValidationError("invalid limit %q", raw))
			return
		}
		filter.Limit = limit
	}

	logs, err := rs.SignalMap.Activity.ListActivities(&filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, logs, len(logs))
}

func (rs *RestfulServer) CreateActivityLog(c *gin.Context) {
	var req ActivityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, signalmap.NewValidationError("invalid request body"))
		return
	}

	log, err := rs.SignalMap.Activity.RecordActivity(&signalmap.ActivityEntry{
		Action:      req.Action,
		Description: req.Description,
		Type:        models.ActivityType(req.Type),
		Entity:      req.Entity,
		EntityID:    req.EntityID,
		UserID:      req.UserID,
		Details:     req.Details,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, log)
}

func (rs *RestfulServer) DeleteActivityLog(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := rs.SignalMap.Activity.DeleteActivity(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "activity log deleted")
}

// --- analytics, towns, config, limiter ---

func (rs *RestfulServer) GetAnalytics(c *gin.Context) {
	snap, err := rs.SignalMap.Analytics.Snapshot()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, snap)
}

func (rs *RestfulServer) ListTowns(c *gin.Context) {
	filter := signalmap.TownFilter{
		Search: c.Query("search"),
	}
	if raw := c.Query("district"); raw != "" {
		district, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, signalmap.NewValidationError("invalid district %q", raw))
			return
		}
		filter.District = district
	}

	towns, err := rs.SignalMap.Town.ListTowns(&filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, towns, len(towns))
}

type TownCreateRequest struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	District int     `json:"district"`
}

var townCreateRequestSchema = z.Struct(z.Shape{
	"Name":     z.String().Required(),
	"Lat":      z.Float64(),
	"Lng":      z.Float64(),
	"District": z.Int().Required(),
})

func (rs *RestfulServer) CreateTown(c *gin.Context) {
	var req TownCreateRequest
	if err := townCreateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	town, err := rs.SignalMap.Town.CreateTown(&signalmap.TownInput{
		Name:     req.Name,
		Lat:      req.Lat,
		Lng:      req.Lng,
		District: req.District,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, town)
}

func (rs *RestfulServer) UpdateTown(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var patch signalmap.TownPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, signalmap.NewValidationError("invalid request body"))
		return
	}

	town, err := rs.SignalMap.Town.UpdateTown(id, &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, town)
}

func (rs *RestfulServer) DeleteTown(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := rs.SignalMap.Town.DeleteTown(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "town deleted")
}

func (rs *RestfulServer) GetConfig(c *gin.Context) {
	respondOK(c, rs.SignalMap.AppConfig.Get())
}

func (rs *RestfulServer) UpdateAppConfig(c *gin.Context) {
	var patch signalmap.AppConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, signalmap.NewValidationError("invalid request body"))
		return
	}
	respondOK(c, rs.SignalMap.AppConfig.Apply(patch))
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PutLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err})
		return
	}

	rs.SetLimiter(c.ClientIP(), req.Rate, req.Burst)

	respondMessage(c, "limiter updated")
}
