package gpstime

/*
codec.go implements the textual interchange representation of
[GPSTime] values: an ISO 8601-like combined date and time form with
up to twelve sub-second digits.

	datetime    ::= date ("T" | " ") time ["." subseconds]
	date        ::= YYYY "-" MM "-" DD
	time        ::= hh ":" mm ":" ss
	subseconds  ::= 1*12 DIGIT

The grammar is fixed-width except for the sub-second run, so parsing
uses an explicit scanner rather than a regular expression engine.
*/

/*
ParseGPSTime returns an instance of [GPSTime] alongside an error
following an attempt to interpret s per the datetime grammar.

The entire input must match; no surrounding characters are tolerated.
Examples of valid representations include:

	"0001-01-01T00:00:00"
	"2000-01-02 03:04:05.6789"
	"9999-12-31 23:59:59.999999999999"

A grammar violation, including a sub-second run longer than twelve
digits, yields an error unwrapping to both [ErrParse] and
[ErrInvalidArgument]. Components which scan successfully are then
validated exactly as by [NewGPSTime].
*/
func ParseGPSTime(s string, constraints ...Constraint[GPSTime]) (GPSTime, error) {
	c, err := parseDateTimeString(s)
	if err != nil {
		return GPSTime{}, err
	}
	return NewGPSTime(c, constraints...)
}

var dateTimeDigits = [...]int{0, 1, 2, 3, 5, 6, 8, 9, 11, 12, 14, 15, 17, 18}

func parseDateTimeString(s string) (Components, error) {
	var c Components

	if len(s) < 19 {
		return c, errorTruncatedDateTime
	}
	if s[4] != '-' || s[7] != '-' || (s[10] != 'T' && s[10] != ' ') ||
		s[13] != ':' || s[16] != ':' {
		return c, errorBadDateTimeLayout
	}
	for _, i := range dateTimeDigits {
		if !isDigit(s[i]) {
			return c, errorBadDateTimeLayout
		}
	}

	c.Year = toInt2(s[0], s[1])*100 + toInt2(s[2], s[3])
	c.Month = toInt2(s[5], s[6])
	c.Day = toInt2(s[8], s[9])
	c.Hour = toInt2(s[11], s[12])
	c.Minute = toInt2(s[14], s[15])
	c.Second = toInt2(s[17], s[18])

	if len(s) > 19 {
		if s[19] != '.' {
			return c, errorBadDateTimeLayout
		}
		frac := s[20:]
		if len(frac) == 0 {
			return c, errorBadSubSeconds
		}
		if len(frac) > 12 {
			return c, errorLongSubSeconds
		}

		// Right-pad with zeros to exactly twelve digits, then split
		// into four fixed-width groups of three.
		b := [12]byte{'0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0'}
		for i := 0; i < len(frac); i++ {
			if !isDigit(frac[i]) {
				return c, errorBadDateTimeLayout
			}
			b[i] = frac[i]
		}

		int3 := func(p []byte) int {
			return int(p[0]-'0')*100 + int(p[1]-'0')*10 + int(p[2]-'0')
		}
		c.Millisecond = int3(b[0:3])
		c.Microsecond = int3(b[3:6])
		c.Nanosecond = int3(b[6:9])
		c.Picosecond = int3(b[9:12])
	}

	return c, nil
}

// formatDateTime renders the zero-padded combined form with zero heap
// allocations beyond the result, omitting the sub-second suffix when
// every sub-second component is zero.
func formatDateTime(c Components) string {
	var b [19]byte

	b[0] = byte('0' + (c.Year/1000)%10)
	b[1] = byte('0' + (c.Year/100)%10)
	b[2] = byte('0' + (c.Year/10)%10)
	b[3] = byte('0' + c.Year%10)
	b[4] = '-'
	put2(b[:], 5, c.Month)
	b[7] = '-'
	put2(b[:], 8, c.Day)
	b[10] = 'T'
	put2(b[:], 11, c.Hour)
	b[13] = ':'
	put2(b[:], 14, c.Minute)
	b[16] = ':'
	put2(b[:], 17, c.Second)

	if c.Millisecond == 0 && c.Microsecond == 0 &&
		c.Nanosecond == 0 && c.Picosecond == 0 {
		return string(b[:])
	}

	var f [12]byte
	put3(f[:], 0, c.Millisecond)
	put3(f[:], 3, c.Microsecond)
	put3(f[:], 6, c.Nanosecond)
	put3(f[:], 9, c.Picosecond)

	end := 12
	for f[end-1] == '0' {
		end--
	}

	out := make([]byte, 0, 20+end)
	out = append(out, b[:]...)
	out = append(out, '.')
	out = append(out, f[:end]...)
	return string(out)
}
