package gpstime

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

/*
Failure kinds surfaced by this package. Every error returned by a
constructor, parser or arithmetic operation unwraps to exactly one of
the following sentinel values, allowing callers to discriminate the
kind of failure using [errors.Is]:

  - [ErrInvalidArgument]: a calendar component lies outside its valid
    domain, or an input string violates the datetime grammar
  - [ErrOutOfRange]: a tick count, or the result of tick arithmetic,
    falls outside the representable extent of [GPSTime]

Errors produced by [ParseGPSTime] additionally unwrap to [ErrParse];
a grammar violation is a special case of an invalid argument.
*/
var (
	ErrInvalidArgument error = mkerr("invalid argument")
	ErrOutOfRange      error = mkerr("out of range")
	ErrParse           error = mkerr("parse error")
)

/*
component errors.
*/
var (
	errorBadYear        = invalidArgErr{mkerr("year component out of range")}
	errorBadMonth       = invalidArgErr{mkerr("month component out of range")}
	errorBadDay         = invalidArgErr{mkerr("day component out of range for year/month")}
	errorBadHour        = invalidArgErr{mkerr("hour component out of range")}
	errorBadMinute      = invalidArgErr{mkerr("minute component out of range")}
	errorBadSecond      = invalidArgErr{mkerr("second component out of range")}
	errorBadMillisecond = invalidArgErr{mkerr("millisecond component out of range")}
	errorBadMicrosecond = invalidArgErr{mkerr("microsecond component out of range")}
	errorBadNanosecond  = invalidArgErr{mkerr("nanosecond component out of range")}
	errorBadPicosecond  = invalidArgErr{mkerr("picosecond component out of range")}
)

/*
codec errors.
*/
var (
	errorTruncatedDateTime = parseErr{mkerr("datetime string is truncated")}
	errorBadDateTimeLayout = parseErr{mkerr("datetime string does not match YYYY-MM-DD(T| )hh:mm:ss layout")}
	errorBadSubSeconds     = parseErr{mkerr("sub-second digits missing after decimal point")}
	errorLongSubSeconds    = parseErr{mkerr("more than 12 sub-second digits")}
)

/*
range errors.
*/
var (
	errorTicksOutOfRange  = outOfRangeErr{mkerr("tick count is outside of the representable range")}
	errorResultOutOfRange = outOfRangeErr{mkerr("arithmetic result is outside of the representable range")}
)

/*
types which implement the error interface.
*/
type (
	invalidArgErr struct{ e error }
	outOfRangeErr struct{ e error }
	parseErr      struct{ e error }
)

func (r invalidArgErr) Error() string { return `INVALID ARGUMENT: ` + r.e.Error() }
func (r outOfRangeErr) Error() string { return `OUT OF RANGE: ` + r.e.Error() }
func (r parseErr) Error() string      { return `PARSE ERROR: ` + r.e.Error() }

func (r invalidArgErr) Unwrap() error { return ErrInvalidArgument }
func (r outOfRangeErr) Unwrap() error { return ErrOutOfRange }

/*
parse failures qualify both kinds: the dedicated [ErrParse] sentinel
and the broader [ErrInvalidArgument] class.
*/
func (r parseErr) Unwrap() []error { return []error{ErrParse, ErrInvalidArgument} }

func invalidArgErrorf(m ...any) error { return invalidArgErr{mkerrf(m...)} }
func outOfRangeErrorf(m ...any) error { return outOfRangeErr{mkerrf(m...)} }
func parseErrorf(m ...any) error      { return parseErr{mkerrf(m...)} }

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case Int128:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}

	return mkerr(b.String())
}
