package gpstime

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr   func(string) error              = errors.New
	itoa    func(int) string                = strconv.Itoa
	fmtInt  func(int64, int) string         = strconv.FormatInt
	fmtUint func(uint64, int) string        = strconv.FormatUint
	appInt  func([]byte, int64, int) []byte = strconv.AppendInt
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
put2 writes the two digit zero-padded decimal form of v into b
beginning at index i. v must be within [0,100).
*/
func put2(b []byte, i, v int) {
	b[i] = byte('0' + v/10)
	b[i+1] = byte('0' + v%10)
}

/*
put3 writes the three digit zero-padded decimal form of v into b
beginning at index i. v must be within [0,1000).
*/
func put3(b []byte, i, v int) {
	b[i] = byte('0' + v/100)
	b[i+1] = byte('0' + (v/10)%10)
	b[i+2] = byte('0' + v%10)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

/*
toInt2 returns the integer form of the two ASCII digits b0 and b1.
Inputs are assumed to have already been vetted via [isDigit].
*/
func toInt2(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }
