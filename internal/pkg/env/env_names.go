package env

const (
	EnvGrpcSavingsPort = "GRPC_SAVINGS_PORT"
	EnvGrpcSavingsHost = "GRPC_SAVINGS_HOST"
	EnvHttpPort        = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"

	EnvSavingsConfigPath = "SAVINGS_CONFIG_PATH"
	EnvTransferTimeout   = "TRANSFER_TIMEOUT"
	EnvTreasuryAddress   = "REWARDS_TREASURY_ADDRESS"

	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGeminiModel  = "GEMINI_MODEL"
)
