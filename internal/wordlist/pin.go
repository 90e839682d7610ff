package wordlist

import (
	"fmt"
	"strings"
)

// CommonPINs are always part of PIN output.
var CommonPINs = []string{"1234", "0000", "1111", "2222", "9999", "1212", "1004"}

// yearPINEndings are appended to the last two digits of the current year.
var yearPINEndings = []string{"00", "12", "34", "56", "78", "99"}

// humanPINs derives four digit PINs from the birth date and phone number.
func humanPINs(t HumanTarget, year int) []string {
	var sources []string

	if date := strings.TrimSpace(t.BirthDate); date != "" {
		// unpadded parts, so "1/5/1990" yields no month or day PINs
		if parts := splitDate(date); len(parts) == 3 {
			month, day, y := parts[0], parts[1], parts[2]
			sources = append(sources, y, month, day, month+day, day+month)
		}
	}

	if d := digits(t.MobileNumber); len(d) >= 4 {
		sources = append(sources, tail(d, 4))
		if len(d) >= 6 {
			sources = append(sources, tail(d, 6))
		}
	}

	pins := append([]string{}, CommonPINs...)

	yy := fmt.Sprintf("%02d", yearSuffix(year))
	for _, end := range yearPINEndings {
		pins = append(pins, yy+end)
	}

	for _, s := range sources {
		switch runeLen(s) {
		case 4:
			pins = append(pins, s)
		case 6:
			pins = append(pins, head(s, 4))
		case 8:
			pins = append(pins, head(s, 4), tail(s, 4))
		}
	}

	return unique(pins)
}

// yearSuffix returns the last two digits of year, ignoring its sign.
func yearSuffix(year int) int {
	if year < 0 {
		year = -year
	}
	return year % 100
}

// organizationPINs derives PINs from the founding year.
func organizationPINs(t OrganizationTarget) []string {
	pins := append([]string{}, CommonPINs...)

	y := strings.TrimSpace(t.FoundingYear)
	if len(y) == 4 && digits(y) == y {
		pins = append(pins,
			y,
			y[2:]+"00",
			y[2:]+"99",
			y[:2]+y[2:],
		)
	}

	return unique(pins)
}
