package signalmap

import "sync"

type AppConfigSite struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Version     string `json:"version"`
}

type AppConfigSocial struct {
	Facebook  string `json:"facebook"`
	Youtube   string `json:"youtube"`
	Instagram string `json:"instagram"`
}

type AppConfigContact struct {
	Email  string          `json:"email"`
	Phone  string          `json:"phone"`
	Office string          `json:"office"`
	Social AppConfigSocial `json:"social"`
}

type AppConfigAbout struct {
	Mission     string `json:"mission"`
	DataSources string `json:"dataSources"`
	Team        string `json:"team"`
}

type AppConfigMap struct {
	DefaultCenter [2]float64 `json:"defaultCenter"`
	DefaultZoom   int        `json:"defaultZoom"`
	TileURL       string     `json:"tileUrl"`
}

type AppConfig struct {
	Site    AppConfigSite    `json:"site"`
	Contact AppConfigContact `json:"contact"`
	About   AppConfigAbout   `json:"about"`
	Map     AppConfigMap     `json:"map"`
}

// AppConfigPatch replaces whole top-level sections when present, matching the
// shallow-merge contract of the config endpoint.
type AppConfigPatch struct {
	Site    *AppConfigSite    `json:"site"`
	Contact *AppConfigContact `json:"contact"`
	About   *AppConfigAbout   `json:"about"`
	Map     *AppConfigMap     `json:"map"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Site: AppConfigSite{
			Title:       "Bohol Site Monitoring",
			Description: "A monitoring dashboard that visualizes signal status across key areas of Bohol for faster situational awareness.",
			Logo:        "/wifi.jpg",
			Version:     "2.0.0",
		},
		Contact: AppConfigContact{
			Email:  "support@boholsignalmap.local",
			Phone:  "+63 900 000 0000",
			Office: "Tagbilaran City, Bohol",
			Social: AppConfigSocial{
				Facebook:  "https://facebook.com/boholmonitoring",
				Youtube:   "https://youtube.com/@boholmonitoring",
				Instagram: "https://instagram.com/boholmonitoring",
			},
		},
		About: AppConfigAbout{
			Mission:     "Improve coverage visibility and response.",
			DataSources: "Sites, sensors, and field reports.",
			Team:        "Built by the local monitoring group.",
		},
		Map: AppConfigMap{
			DefaultCenter: [2]float64{9.80, 124.20},
			DefaultZoom:   9,
			TileURL:       "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
		},
	}
}

// AppConfigStore is a process-lifetime cache; deliberately not persisted.
type AppConfigStore struct {
	mu     sync.RWMutex
	config AppConfig
}

func NewAppConfigStore() *AppConfigStore {
	return &AppConfigStore{config: DefaultAppConfig()}
}

func (s *AppConfigStore) Get() AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *AppConfigStore) Apply(patch AppConfigPatch) AppConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Site != nil {
		s.config.Site = *patch.Site
	}
	if patch.Contact != nil {
		s.config.Contact = *patch.Contact
	}
	if patch.About != nil {
		s.config.About = *patch.About
	}
	if patch.Map != nil {
		s.config.Map = *patch.Map
	}
	return s.config
}
