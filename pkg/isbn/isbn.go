// Package isbn validates ISBN-10 and ISBN-13 identifiers and converts between them.
//
// Every function is a pure function of its input and safe for concurrent use.
package isbn

import (
	"fmt"
	"strings"
)

// Kind is the ISBN generation of an identifier.
type Kind string

const (
	KindUnknown Kind = ""
	KindISBN10  Kind = "isbn10"
	KindISBN13  Kind = "isbn13"
)

var cleaner = strings.NewReplacer("-", "", " ", "")

// Clean removes hyphens and spaces from an identifier. Every other character is kept.
func Clean(isbn string) string {
	return cleaner.Replace(isbn)
}

// Normalize cleans isbn. A nil isbn reports ErrNull and an empty one ErrEmpty.
func Normalize(isbn *string) (string, error) {
	if isbn == nil {
		return "", ErrNull
	}
	if *isbn == "" {
		return "", ErrEmpty
	}
	return Clean(*isbn), nil
}

// NormalizeInt returns n as decimal text, left-padded with zeros to 10 characters.
func NormalizeInt(n uint64) string {
	return fmt.Sprintf("%010d", n)
}

// Validate reports whether isbn is a valid ISBN-10 or ISBN-13 once cleaned.
func Validate(isbn string) bool {
	return Check(isbn) == nil
}

// ValidateInt is Validate for an identifier held as an integer.
func ValidateInt(n uint64) bool {
	return Validate(NormalizeInt(n))
}

// Check validates isbn and returns why it is not valid: ErrEmpty, or an error
// wrapping ErrMalformed or ErrChecksum.
func Check(isbn string) error {
	if isbn == "" {
		return ErrEmpty
	}
	n := Clean(isbn)
	switch len(n) {
	case 10:
		return check10(n)
	case 13:
		return check13(n)
	}
	return fmt.Errorf("%w: %q has length %d", ErrMalformed, n, len(n))
}

func check10(n string) error {
	if !digits(n[:9]) {
		return fmt.Errorf("%w: %q has a non-digit before the check character", ErrMalformed, n)
	}
	if n[9] != 'X' && !isDigit(n[9]) {
		return fmt.Errorf("%w: %q has check character %q", ErrMalformed, n, n[9])
	}
	if want := checkDigit10(n[:9]); want != n[9] {
		return fmt.Errorf("%w: %q, want %q", ErrChecksum, n, want)
	}
	return nil
}

func check13(n string) error {
	if !digits(n) {
		return fmt.Errorf("%w: %q has a non-digit", ErrMalformed, n)
	}
	if want := checkDigit13(n[:12]); want != n[12] {
		return fmt.Errorf("%w: %q, want %q", ErrChecksum, n, want)
	}
	return nil
}

// KindOf returns the generation of a valid identifier, KindUnknown otherwise.
func KindOf(isbn string) Kind {
	if !Validate(isbn) {
		return KindUnknown
	}
	if len(Clean(isbn)) == 10 {
		return KindISBN10
	}
	return KindISBN13
}

// Convert turns an ISBN-10 into an ISBN-13 and an ISBN-13 into an ISBN-10.
// Returns an empty string when the cleaned input has neither length or its
// payload digits are not digits.
//
// The input check character is not verified: a mistyped ISBN converts to a
// well-formed identifier of a different number.
func Convert(isbn string) string {
	n := Clean(isbn)
	switch len(n) {
	case 10:
		return to13(n)
	case 13:
		return to10(n)
	}
	return ""
}

// ConvertInt is Convert for an identifier held as an integer.
func ConvertInt(n uint64) string {
	return Convert(NormalizeInt(n))
}

// To13 converts an ISBN-10 to ISBN-13 by prepending 978 and computing the check digit.
// Returns an empty string if the input is not a 10 character identifier.
func To13(isbn10 string) string {
	n := Clean(isbn10)
	if len(n) != 10 {
		return ""
	}
	return to13(n)
}

// To10 converts an ISBN-13 to ISBN-10 by dropping the three character prefix
// and computing the check digit. The prefix itself is not inspected.
// Returns an empty string if the input is not a 13 character identifier.
func To10(isbn13 string) string {
	n := Clean(isbn13)
	if len(n) != 13 {
		return ""
	}
	return to10(n)
}

func to13(n string) string {
	if !digits(n[:9]) {
		return ""
	}
	base := "978" + n[:9]
	return base + string(checkDigit13(base))
}

func to10(n string) string {
	base := n[3:12]
	if !digits(base) {
		return ""
	}
	return base + string(checkDigit10(base))
}

// checkDigit10 computes the ISBN-10 check character of nine digits.
func checkDigit10(base string) byte {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(base[i]-'0') * (i + 1)
	}
	check := sum % 11
	if check == 10 {
		return 'X'
	}
	return byte('0' + check)
}

// checkDigit13 computes the ISBN-13 check digit of twelve digits.
func checkDigit13(base string) byte {
	sum := 0
	for i := 0; i < 12; i++ {
		d := int(base[i] - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return byte('0' + (10-sum%10)%10)
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
