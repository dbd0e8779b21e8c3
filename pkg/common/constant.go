package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyEnvDBType       string = "ENVDASH_DB_TYPE"
	EnvKeyEnvDbPath       string = "ENVDASH_DB_PATH"
	EnvKeyEnvConfigPath   string = "ENVDASH_CONFIG_PATH"
	EnvKeyEnvHttpHostPort string = "ENVDASH_HTTP_HOST_PORT"

	EnvKeyEnvDefaultRate  string = "ENVDASH_DEFAULT_RATE"
	EnvKeyEnvDefaultBurst string = "ENVDASH_DEFAULT_BURST"

	LoggerNameMonitorCore   string = "monitor_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNamePoller        string = "poller"

	LoggerFieldCategory string = "category"

	LoggerCategoryReading   string = "reading"
	LoggerCategoryOffline   string = "offline"
	LoggerCategoryAnomaly   string = "anomaly"
	LoggerCategoryEngine    string = "engine"
	LoggerCategoryNarrative string = "narrative"
)
