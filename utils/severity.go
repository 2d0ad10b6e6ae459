package utils

// Band is a traffic-light severity annotation for a score card.
type Band struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// ScoreBand maps a 0-10 nutrition or wellness score to its band.
// Thresholds are exclusive: 4 is Fair, 7 is Good.
func ScoreBand(score float64) Band {
	switch {
	case score < 4:
		return Band{Color: "red", Label: "Needs Attention"}
	case score < 7:
		return Band{Color: "yellow", Label: "Fair"}
	default:
		return Band{Color: "green", Label: "Good"}
	}
}

// CaloriesBurnedBand maps burned calories to the exercise card band.
func CaloriesBurnedBand(calories int) Band {
	switch {
	case calories < 100:
		return Band{Color: "red", Label: "Needs Attention"}
	case calories < 300:
		return Band{Color: "yellow", Label: "Fair"}
	default:
		return Band{Color: "green", Label: "Good"}
	}
}
