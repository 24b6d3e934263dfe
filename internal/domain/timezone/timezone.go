package timezone

import (
	"fmt"
	"math"
)

// Zone is a whole-hour UTC offset labelled by a reference city.
type Zone struct {
	Name         string
	Offset       int
	Abbreviation string
	City         string
	UTCOffset    string
}

var hourly = []Zone{
	{Offset: -12, Abbreviation: "BAK", City: "Baker Island"},
	{Offset: -11, Abbreviation: "PAG", City: "Pago Pago"},
	{Offset: -10, Abbreviation: "HON", City: "Honolulu"},
	{Offset: -9, Abbreviation: "ANC", City: "Anchorage"},
	{Offset: -8, Abbreviation: "LA", City: "Los Angeles"},
	{Offset: -7, Abbreviation: "DEN", City: "Denver"},
	{Offset: -6, Abbreviation: "CHI", City: "Chicago"},
	{Offset: -5, Abbreviation: "NYC", City: "New York City"},
	{Offset: -4, Abbreviation: "HAL", City: "Halifax"},
	{Offset: -3, Abbreviation: "RIO", City: "Rio de Janeiro"},
	{Offset: -2, Abbreviation: "FER", City: "Fernando de Noronha"},
	{Offset: -1, Abbreviation: "PRA", City: "Praia"},
	{Offset: 0, Abbreviation: "LON", City: "London"},
	{Offset: 1, Abbreviation: "PAR", City: "Paris"},
	{Offset: 2, Abbreviation: "CAI", City: "Cairo"},
	{Offset: 3, Abbreviation: "MOS", City: "Moscow"},
	{Offset: 4, Abbreviation: "DUB", City: "Dubai"},
	{Offset: 5, Abbreviation: "KAR", City: "Karachi"},
	{Offset: 6, Abbreviation: "DHK", City: "Dhaka"},
	{Offset: 7, Abbreviation: "BKK", City: "Bangkok"},
	{Offset: 8, Abbreviation: "SIN", City: "Singapore"},
	{Offset: 9, Abbreviation: "TOK", City: "Tokyo"},
	{Offset: 10, Abbreviation: "SYD", City: "Sydney"},
	{Offset: 11, Abbreviation: "NOU", City: "Noumea"},
}

// Hourly returns the 24 zones from UTC-12 to UTC+11.
func Hourly() []Zone {
	out := make([]Zone, len(hourly))
	for i, z := range hourly {
		z.UTCOffset = fmt.Sprintf("%+d", z.Offset)
		// Etc/GMT names carry the inverted sign
		z.Name = fmt.Sprintf("Etc/GMT%+d", -z.Offset)
		if z.Offset == 0 {
			z.Name = "Etc/GMT+0"
		}
		out[i] = z
	}
	return out
}

// Closest returns the zone nearest to offsetHours; the first zone wins ties.
// It returns false when zones is empty.
func Closest(zones []Zone, offsetHours float64) (Zone, bool) {
	if len(zones) == 0 {
		return Zone{}, false
	}
	closest := zones[0]
	for _, z := range zones[1:] {
		if math.Abs(float64(z.Offset)-offsetHours) < math.Abs(float64(closest.Offset)-offsetHours) {
			closest = z
		}
	}
	return closest, true
}
