package ports

// Alert transition kinds reported through RecordAlert.
const (
	AlertAboveHigh = "above_high"
	AlertBelowLow  = "below_low"
	AlertNormal    = "normal"
)

// AlertEvent describes one edge-triggered threshold transition. Threshold is
// zero for the back-to-normal transition.
type AlertEvent struct {
	Kind      string
	Celsius   float64
	Threshold float64
}

type Observability interface {
	LogInfo(msg string, fields ...Field)
	LogWarn(msg string, fields ...Field)
	LogError(msg string, err error, fields ...Field)

	IncCounter(name string, v float64)
	ObserveLatency(name string, seconds float64)

	SetGauge(name string, v float64)

	RecordAlert(ev AlertEvent)
}

type Field struct {
	Key   string
	Value any
}
