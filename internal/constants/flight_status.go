package constants

type FlightState string

const (
	FlightOnTime    FlightState = "ON_TIME"
	FlightDelayed   FlightState = "DELAYED"
	FlightDeparted  FlightState = "DEPARTED"
	FlightArrived   FlightState = "ARRIVED"
	FlightCancelled FlightState = "CANCELLED"
)

// FlightStates is the draw order used by the status simulator.
var FlightStates = []FlightState{
	FlightOnTime,
	FlightDelayed,
	FlightDeparted,
	FlightArrived,
	FlightCancelled,
}

var DelayReasons = []string{
	"Weather conditions",
	"Air traffic control",
	"Mechanical issue",
	"Crew scheduling",
	"Airport congestion",
	"Security check",
	"Fuel delay",
	"Previous flight delay",
}

const (
	MinDelayMinutes    = 15
	DelaySpreadMinutes = 180

	// SimulationProbability is the per-record chance of an update in a bulk run.
	SimulationProbability = 0.3
)
