// Package timevals defines conversion constants for time arithmetic in
// units of seconds. Everything else in this repository counts time as
// seconds elapsed since the start of a day.
package timevals

const (
	SecondsInAMinute = 60

	MinutesInAnHour = 60

	SecondsInAnHour = SecondsInAMinute * MinutesInAnHour

	HoursInADay = 24

	SecondsInADay = HoursInADay * MinutesInAnHour * SecondsInAMinute
)
