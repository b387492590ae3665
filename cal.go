package gpstime

/*
cal.go contains the pure proleptic Gregorian calendar conversion
functions shared by [GPSTime] and the textual codec. The day count
algorithms are closed-form: no iteration, no floating point, valid
across the entire proleptic range.
*/

import "time"

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

/*
isLeapYear applies the Gregorian rule: divisible by four; not by one
hundred unless also by four hundred.
*/
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
daysInMonth returns the last valid day number of the specified month,
e.g. 29 for February of a leap year. month must be within [1,12].
*/
func daysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

/*
civilToDays returns the signed day count of the proleptic Gregorian
date y/m/d relative to 1970-01-01 (day zero).

The decomposition follows the standard era/year-of-era/day-of-year
identity: each 400-year era holds exactly 146097 days, and a March
based month numbering keeps the leap day at the end of the era year.
*/
func civilToDays(y, m, d int) int64 {
	if m <= 2 {
		y--
	}

	yy := int64(y)
	era := yy / 400
	if yy < 0 {
		era = (yy - 399) / 400
	}
	yoe := yy - era*400

	mp := int64(m) + 9
	if m > 2 {
		mp = int64(m) - 3
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy

	return era*146097 + doe - 719468
}

/*
daysToCivil is the exact inverse of [civilToDays].
*/
func daysToCivil(days int64) (y, m, d int) {
	z := days + 719468

	era := z / 146097
	if z < 0 {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097

	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	d = int(doy - (153*mp+2)/5 + 1)
	m = int(mp - 9)
	if mp < 10 {
		m = int(mp + 3)
	}

	yy := yoe + era*400
	if m <= 2 {
		yy++
	}
	return int(yy), m, d
}

/*
weekdayFromDays returns the day of the week of the specified day
count. Day zero (1970-01-01) is a Thursday.
*/
func weekdayFromDays(days int64) time.Weekday {
	wd := (days + 4) % 7
	if wd < 0 {
		wd += 7
	}
	return time.Weekday(wd)
}
