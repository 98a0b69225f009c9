// file: internals/features/school/scores/model/term.go
package model

import "strings"

// Term disimpan dalam satu bentuk kanonik pendek ("1st"/"2nd"/"3rd").
// Bentuk panjang warisan ("First Term" dst.) tetap diterima di boundary
// API lewat ParseTerm, tapi tidak pernah ikut tersimpan.
const (
	TermFirst  = "1st"
	TermSecond = "2nd"
	TermThird  = "3rd"
)

var longTermForms = map[string]string{
	"first term":  TermFirst,
	"second term": TermSecond,
	"third term":  TermThird,
}

// ParseTerm menormalkan input term ke bentuk kanonik.
// Mengembalikan ("", false) untuk input yang tidak dikenal.
func ParseTerm(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "1st", "2nd", "3rd":
		return s, true
	}
	if t, ok := longTermForms[s]; ok {
		return t, true
	}
	return "", false
}

// TermLongForm: kebalikan ParseTerm, untuk tampilan rapor.
func TermLongForm(term string) string {
	switch term {
	case TermFirst:
		return "First Term"
	case TermSecond:
		return "Second Term"
	case TermThird:
		return "Third Term"
	default:
		return term
	}
}
