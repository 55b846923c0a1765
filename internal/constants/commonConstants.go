package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixPopularDestinations CachePrefix = "POPULAR_DESTINATIONS"
)

const (
	// MaxHistoryPerUser is the retention cap applied after every history insert.
	MaxHistoryPerUser = 20
	RecentSearchLimit = 10
	SuggestionLimit   = 10
	PopularLimit      = 10

	PopularWindowDays = 30

	ActivityFee = 50.0

	DefaultMinGroupSize            = 5
	DefaultGroupDiscountPercentage = 5.0
)
