package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyBoholDBType string = "BOHOL_DB_TYPE"
	EnvKeyBoholDbPath string = "BOHOL_DB_PATH"

	EnvKeyBoholHttpHostPort string = "BOHOL_HTTP_HOST_PORT"

	EnvKeyBoholDefaultRate  string = "BOHOL_DEFAULT_RATE"
	EnvKeyBoholDefaultBurst string = "BOHOL_DEFAULT_BURST"

	LoggerNameSignalMapCore string = "signalmap_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCategory     string = "category"
	LoggerCategorySite      string = "site"
	LoggerCategoryPersonnel string = "personnel"
	LoggerCategoryActivity  string = "activity"
	LoggerCategoryAnalytics string = "analytics"
	LoggerCategoryTown      string = "town"
)
