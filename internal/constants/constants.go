package constants

import "time"

// Layouts used for the flights schedule columns. Departure dates and times are
// persisted as zero-padded strings so lexicographic comparison matches
// chronological order on every SQL dialect.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// List endpoint pagination defaults.
const (
	DefaultPerPage        = 10
	FlightsDefaultPerPage = 15
	MaxPerPage            = 100
)

// Dashboard aggregation windows and limits.
const (
	UpcomingWindow      = 6 * time.Hour
	UpcomingLimit       = 10
	GateUtilizationLimit = 10
	RecentUpdatesWindow = time.Hour
	RecentUpdatesLimit  = 5
)

// Sort direction values accepted on list endpoints.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FlightSortFields is the allow-list for the flights index. Anything else
// falls back to departure_date, departure_time ascending.
var FlightSortFields = map[string]bool{
	"id":             true,
	"flight_number":  true,
	"departure_time": true,
	"departure_date": true,
	"created_at":     true,
}

// Sort allow-lists for the lookup resources.
var (
	AirlineSortFields = map[string]bool{"id": true, "name": true, "code": true, "created_at": true}
	AirportSortFields = map[string]bool{"id": true, "name": true, "code": true, "city": true, "created_at": true}
	GateSortFields    = map[string]bool{"id": true, "code": true, "created_at": true}
	StatusSortFields  = map[string]bool{"id": true, "name": true, "created_at": true}
	UserSortFields    = map[string]bool{"id": true, "name": true, "email": true, "created_at": true}
)
