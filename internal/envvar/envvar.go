package envvar

const (
	// ServingEnv is the environment variable used to determine the environment
	ServingEnv = "SERVING_ENV"

	// ServingConfigPath is the environment variable used to locate the config file
	ServingConfigPath = "SERVING_CONFIG_PATH"

	// ServingSchemaPath is the environment variable used to locate the config schema
	ServingSchemaPath = "SERVING_SCHEMA_PATH"
)
