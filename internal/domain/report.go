package domain

// HID output report layout for the Iota L24 digit panel.
const (
	ReportID     = 0x07
	ReportLength = 64
)

const (
	reportDigitHundreds = 3
	reportDigitTens     = 4
	reportDigitOnes     = 5
)

// Report is the fixed 64-byte output report. A fresh value is built every
// tick so stale bytes never leak between writes.
type Report [ReportLength]byte

// EncodeReport builds the report for a non-negative display value. The caller
// clamps to the display range first; the encoder never sees negative input.
func EncodeReport(degrees int) Report {
	var r Report
	r[0] = ReportID
	r[1] = 0xff
	r[2] = 0xff
	r[reportDigitHundreds] = byte(degrees / 100)
	r[reportDigitTens] = byte(degrees / 10 % 10)
	r[reportDigitOnes] = byte(degrees % 10)
	return r
}

// Digits decodes the value carried by the report, for tests and diagnostics.
func (r Report) Digits() int {
	return int(r[reportDigitHundreds])*100 + int(r[reportDigitTens])*10 + int(r[reportDigitOnes])
}
