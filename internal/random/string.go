package random

import (
	"strings"
)

const (
	letters      = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFJHIJKLMNOPQRSTUVWXYZ"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ASCIIString generates random ASCII string which never starts with a digit
func ASCIIString(minLen, maxLen int) string {
	slen := Int(minLen, maxLen)

	var sb strings.Builder
	sb.Grow(slen)
	for sb.Len() < slen {
		char := letters[rnd.Intn(len(letters))]
		if sb.Len() == 0 && '0' <= char && char <= '9' {
			continue
		}
		sb.WriteByte(char)
	}
	return sb.String()
}

// WorkoutCode generates random three-letter uppercase code absent in known
func WorkoutCode(known ...string) string {
	for {
		code := make([]byte, 3)
		for i := range code {
			code[i] = upperLetters[rnd.Intn(len(upperLetters))]
		}
		if !contains(known, string(code)) {
			return string(code)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
