package external

import (
	"encoding/xml"
	"time"
)

// lastUpdateLayout is the UTC timestamp format of <lastupdate value="...">
const lastUpdateLayout = "2006-01-02T15:04:05"

// CurrentWeatherXML is the mode=xml rendition of the current weather payload
type CurrentWeatherXML struct {
	XMLName     xml.Name       `xml:"current"`
	City        CityXML        `xml:"city"`
	Temperature ValueXML       `xml:"temperature"`
	FeelsLike   ValueXML       `xml:"feels_like"`
	Humidity    ValueXML       `xml:"humidity"`
	Pressure    ValueXML       `xml:"pressure"`
	Wind        WindXML        `xml:"wind"`
	Visibility  ValueXML       `xml:"visibility"`
	Weather     WeatherCodeXML `xml:"weather"`
	LastUpdate  LastUpdateXML  `xml:"lastupdate"`
}

type CityXML struct {
	Name string `xml:"name,attr"`
}

// ValueXML is an element whose reading sits in the value attribute
type ValueXML struct {
	Value float64 `xml:"value,attr"`
}

type WindXML struct {
	Speed ValueXML `xml:"speed"`
}

// WeatherCodeXML carries the condition code and its description
type WeatherCodeXML struct {
	Number int    `xml:"number,attr"`
	Value  string `xml:"value,attr"`
	Icon   string `xml:"icon,attr"`
}

type LastUpdateXML struct {
	Value string `xml:"value,attr"`
}

// ToResponse converts the XML payload to the JSON-shaped response used downstream.
// The primary keyword is derived from the condition code, which is all the XML carries.
func (c *CurrentWeatherXML) ToResponse() *CurrentWeatherResponse {
	resp := &CurrentWeatherResponse{
		Main: MainDTO{
			Temp:      c.Temperature.Value,
			FeelsLike: c.FeelsLike.Value,
			Pressure:  c.Pressure.Value,
			Humidity:  c.Humidity.Value,
		},
		Visibility: c.Visibility.Value,
		Wind:       WindDTO{Speed: c.Wind.Speed.Value},
		Name:       c.City.Name,
	}

	if c.Weather.Number != 0 || c.Weather.Value != "" {
		resp.Weather = []WeatherDescriptionDTO{{
			ID:          c.Weather.Number,
			Main:        ConditionGroup(c.Weather.Number),
			Description: c.Weather.Value,
			Icon:        c.Weather.Icon,
		}}
	}

	if t, err := time.Parse(lastUpdateLayout, c.LastUpdate.Value); err == nil {
		resp.Dt = t.Unix()
	}
	return resp
}

var atmosphereGroups = map[int]string{
	701: "Mist",
	711: "Smoke",
	721: "Haze",
	731: "Dust",
	741: "Fog",
	751: "Sand",
	761: "Dust",
	762: "Ash",
	771: "Squall",
	781: "Tornado",
}

// ConditionGroup maps an OpenWeatherMap condition code to its group name ("Rain", "Clouds", ...)
func ConditionGroup(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "Thunderstorm"
	case code >= 300 && code < 400:
		return "Drizzle"
	case code >= 500 && code < 600:
		return "Rain"
	case code >= 600 && code < 700:
		return "Snow"
	case code >= 700 && code < 800:
		return atmosphereGroups[code]
	case code == 800:
		return "Clear"
	case code > 800 && code < 900:
		return "Clouds"
	}
	return ""
}
