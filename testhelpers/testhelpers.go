// Package testhelpers holds small fixtures shared by the package tests. It
// only depends on the standard library so that every package can use it
// from its internal tests.
package testhelpers

import (
	"strconv"
	"strings"
)

// EnglishDistribution is the standard English letter distribution.
const EnglishDistribution = `0:{2:*}
1:{12:E} {9:A,I} {8:O} {6:N,R,T} {4:L,S,U}
2:{4:D} {3:G}
3:{2:B,C,M,P}
4:{2:F,H,V,W,Y}
5:{1:K}
8:{1:J,X}
10:{1:Q,Z}
`

// SmallLayout is a 5x5 board with a double word center.
const SmallLayout = `5
3. .. .3 .. 3.
.. 2. .. 2. ..
.3 .. .2 .. .3
.. 2. .. 2. ..
3. .. .3 .. 3.
`

// Words is a small sorted English word list.
var Words = []string{
	"AA",
	"AB",
	"ABET",
	"ABETS",
	"ACE",
	"ACES",
	"ACT",
	"ACTS",
	"AD",
	"AE",
	"AG",
	"AH",
	"AI",
	"AL",
	"AM",
	"AN",
	"ANESTRI",
	"ANT",
	"ANTS",
	"AR",
	"ART",
	"ARTS",
	"AS",
	"ASTER",
	"AT",
	"ATE",
	"ATES",
	"AW",
	"AX",
	"AXE",
	"AXES",
	"AY",
	"BA",
	"BAS",
	"BAST",
	"BAT",
	"BATS",
	"BE",
	"BEAST",
	"BEAT",
	"BEATS",
	"BEST",
	"BET",
	"BETS",
	"BI",
	"BO",
	"BY",
	"CAB",
	"CABS",
	"CAN",
	"CANE",
	"CANES",
	"CANS",
	"CARE",
	"CARES",
	"CART",
	"CARTS",
	"CAST",
	"CASTE",
	"CAT",
	"CATER",
	"CATERS",
	"CATS",
	"COAT",
	"COATS",
	"COT",
	"COTS",
	"CRATE",
	"CRATES",
	"DA",
	"DE",
	"DO",
	"DOE",
	"DOES",
	"DOG",
	"DOGS",
	"DOSE",
	"EAST",
	"EAT",
	"EATS",
	"ED",
	"EF",
	"EH",
	"EL",
	"EM",
	"EN",
	"ER",
	"ES",
	"ETAS",
	"EX",
	"FA",
	"FE",
	"GO",
	"GOD",
	"GODS",
	"HA",
	"HE",
	"HELD",
	"HELL",
	"HELLO",
	"HELLS",
	"HELP",
	"HELPS",
	"HI",
	"HM",
	"HO",
	"ID",
	"IF",
	"IN",
	"INN",
	"INNS",
	"INTO",
	"ION",
	"IONS",
	"IS",
	"IT",
	"JO",
	"KA",
	"LA",
	"LI",
	"LO",
	"MA",
	"ME",
	"MI",
	"MO",
	"MU",
	"MY",
	"NA",
	"NASTIER",
	"NE",
	"NIT",
	"NITS",
	"NO",
	"NU",
	"OD",
	"ODE",
	"ODES",
	"OE",
	"OF",
	"OH",
	"OI",
	"OM",
	"ON",
	"OP",
	"OR",
	"OS",
	"OW",
	"OX",
	"OXEN",
	"OY",
	"PA",
	"PE",
	"PI",
	"QAT",
	"QATS",
	"QI",
	"QUIT",
	"QUITS",
	"QUIZ",
	"RAN",
	"RANT",
	"RANTS",
	"RAT",
	"RATE",
	"RATES",
	"RATS",
	"RE",
	"REACT",
	"REACTS",
	"RECAST",
	"RETAINS",
	"RETINAS",
	"SAT",
	"SCAB",
	"SCAN",
	"SCAT",
	"SEA",
	"SEAT",
	"SET",
	"SH",
	"SI",
	"SNIT",
	"SO",
	"STAINER",
	"STAR",
	"STARE",
	"START",
	"TA",
	"TAB",
	"TABS",
	"TAE",
	"TAN",
	"TANS",
	"TAR",
	"TARE",
	"TARES",
	"TARS",
	"TAX",
	"TAXES",
	"TEA",
	"TEAR",
	"TEARS",
	"TEAS",
	"TES",
	"TI",
	"TIN",
	"TINS",
	"TO",
	"TRACE",
	"TRACES",
	"UH",
	"UM",
	"UN",
	"UP",
	"US",
	"UT",
	"WE",
	"WO",
	"XI",
	"XU",
	"YA",
	"YE",
	"YO",
	"ZA",
	"ZAP",
	"ZAPS",
	"ZAX",
	"ZEP",
	"ZEPS",
}

// WordList renders Words as a newline-separated word list file.
func WordList() string {
	return strings.Join(Words, "\n") + "\n"
}

// EmptyLayout renders an n x n layout with no premium squares.
func EmptyLayout(n int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n) + "\n")
	row := strings.TrimSpace(strings.Repeat(".. ", n))
	for i := 0; i < n; i++ {
		sb.WriteString(row + "\n")
	}
	return sb.String()
}
