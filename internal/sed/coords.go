package sed

import (
	"math"

	"github.com/RMahshie/sedview/pkg/models"
)

// RAToHMS converts a right ascension in degrees to hours, minutes and seconds
func RAToHMS(deg float64) models.Sexagesimal {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	whole, minutes, seconds := split(deg / 15)
	// A carry out of the seconds can land exactly on 24h
	if whole >= 24 {
		whole -= 24
	}
	return models.Sexagesimal{Sign: 1, Whole: whole, Minutes: minutes, Seconds: seconds, Unit: "h"}
}

// DecToDMS converts a declination in degrees to degrees, arcminutes and arcseconds
func DecToDMS(deg float64) models.Sexagesimal {
	sign := 1
	if deg < 0 {
		sign = -1
	}
	whole, minutes, seconds := split(math.Abs(deg))
	return models.Sexagesimal{Sign: sign, Whole: whole, Minutes: minutes, Seconds: seconds, Unit: "d"}
}

// split breaks a non-negative value into whole units, sixtieths and 3600ths
func split(v float64) (int, int, float64) {
	whole := math.Floor(v)
	rem := (v - whole) * 60
	minutes := math.Floor(rem)
	seconds := (rem - minutes) * 60

	// Guard against 59.99999 rolling over after float error
	if seconds >= 60-1e-9 {
		seconds = 0
		minutes++
	}
	if minutes >= 60 {
		minutes = 0
		whole++
	}
	return int(whole), int(minutes), seconds
}
