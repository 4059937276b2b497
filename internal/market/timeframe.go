package market

// Timeframe is a history window selectable on the coin detail view.
type Timeframe string

const (
	Timeframe24h Timeframe = "24h"
	Timeframe7d  Timeframe = "7d"
	Timeframe30d Timeframe = "30d"
	Timeframe1y  Timeframe = "1y"
)

// DefaultTimeframe is used when no or an unknown timeframe is given.
const DefaultTimeframe = Timeframe7d

// Days returns the number of days of history for the timeframe.
// Unknown timeframes map to the default window of 7 days.
func (t Timeframe) Days() int {
	switch t {
	case Timeframe24h:
		return 1
	case Timeframe30d:
		return 30
	case Timeframe1y:
		return 365
	default:
		return 7
	}
}

// Timeframes lists the supported timeframes in display order.
func Timeframes() []Timeframe {
	return []Timeframe{Timeframe24h, Timeframe7d, Timeframe30d, Timeframe1y}
}
