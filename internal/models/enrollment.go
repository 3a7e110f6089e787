package models

import (
	"strconv"
	"strings"
	"time"
)

const (
	SeasonFall   = "Fall"
	SeasonWinter = "Winter"
	SeasonSummer = "Summer"
)

// Enrollment is a semester a user is registered in. Course names the
// course group the semester came from, when there is one.
type Enrollment struct {
	Season string `json:"season"`
	Year   int    `json:"year"`
	Course string `json:"course,omitempty"`
}

// NewEnrollment normalizes season to its canonical capitalization.
// ok is false for anything other than fall, winter or summer.
func NewEnrollment(season string, year int) (Enrollment, bool) {
	switch strings.ToLower(season) {
	case "fall":
		return Enrollment{Season: SeasonFall, Year: year}, true
	case "winter":
		return Enrollment{Season: SeasonWinter, Year: year}, true
	case "summer":
		return Enrollment{Season: SeasonSummer, Year: year}, true
	}
	return Enrollment{}, false
}

func (e Enrollment) String() string {
	s := e.Season + " " + strconv.Itoa(e.Year)
	if e.Course != "" {
		return e.Course + " (" + s + ")"
	}
	return s
}

// ExchangeTermCode returns the year and W/F suffix used to name the exchange
// student group active at t. Terms starting in September are fall terms.
func ExchangeTermCode(t time.Time) string {
	season := "W"
	if t.Month() >= time.September {
		season = "F"
	}
	return strconv.Itoa(t.Year()) + season
}
