package chrono

// Civil-date helpers for naming epoch-relative days. This is deliberately
// minimal day-count arithmetic over the proleptic Gregorian calendar;
// full calendar/clock decomposition and formatting live outside this
// package.

// DaysFromCivil returns the number of days from 2000-01-01 to the given
// calendar date. Dates before the epoch yield negative counts.
func DaysFromCivil(year int64, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400
	mp := int64(month) + 9
	if month > 2 {
		mp = int64(month) - 3
	}
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	// 730425 days from 0000-03-01 to 2000-01-01.
	return era*146097 + doe - 730425
}

// CivilFromDays is the inverse of DaysFromCivil: the calendar date of a
// day count relative to 2000-01-01.
func CivilFromDays(days int64) (year int64, month, day int) {
	z := days + 730425
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, int(m), int(d)
}
