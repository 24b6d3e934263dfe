package entity

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// City is a monitored location.
type City struct {
	Name         string  `json:"name" mapstructure:"name"`
	Country      string  `json:"country" mapstructure:"country"`
	Abbreviation string  `json:"abbreviation" mapstructure:"abbreviation"`
	Lat          float64 `json:"lat" mapstructure:"lat"`
	Lon          float64 `json:"lon" mapstructure:"lon"`
}

// ID returns the record identifier: the lowercased name with whitespace runs replaced by "-".
func (c City) ID() string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(c.Name)), "-")
}
