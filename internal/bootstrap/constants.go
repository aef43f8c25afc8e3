package bootstrap

// Log messages for startup and shutdown
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingService      = "Starting Confidant"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgShuttingDownServer   = "Shutting down server"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgRelayHubStopped      = "Relay hub stopped"
	LogMsgDatabasePoolClosed   = "Database pool closed"
	LogMsgServerStopped        = "Server stopped"
)

// Log retention: keep this many session files around
const LogFilesToKeep = 9
