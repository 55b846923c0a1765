package constants

const (
	MsgHistorySaved          = "Search history saved successfully"
	MsgHistoryCleared        = "Search history cleared successfully"
	MsgFlightStatusSeeded    = "Mock flight status data initialized successfully"
	MsgTravelPackagesSeeded  = "Mock travel package data initialized successfully"
	MsgInvalidQueryParameter = "Invalid query parameter"
	MsgInvalidRequestBody    = "Invalid request body"
	MsgMissingQueryParameter = "Missing required query parameter"
	MsgStoreFailure          = "Unable to reach data store"
	MsgUnauthorized          = "Unauthorized"
)
