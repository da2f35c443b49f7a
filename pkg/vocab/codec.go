package vocab

import (
	"strings"

	"github.com/japaniel/abfrag/pkg/apperr"
)

// ListDelimiter separates list items inside a single text column.
const ListDelimiter = ";"

// EncodeList joins items with ListDelimiter. Items containing the delimiter
// would not survive DecodeList and are rejected.
func EncodeList(items []string) (string, error) {
	for i, it := range items {
		if strings.Contains(it, ListDelimiter) {
			return "", apperr.Errorf(apperr.KindDelimited, "encode list",
				"item %d (%q) contains delimiter %q", i, it, ListDelimiter)
		}
	}
	return strings.Join(items, ListDelimiter), nil
}

// DecodeList splits a column value produced by EncodeList.
func DecodeList(s string) []string {
	return strings.Split(s, ListDelimiter)
}

// EncodeOptionalList encodes an optional list; nil stays nil (SQL NULL).
func EncodeOptionalList(items []string) (*string, error) {
	if items == nil {
		return nil, nil
	}
	s, err := EncodeList(items)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DecodeOptionalList is the inverse of EncodeOptionalList.
func DecodeOptionalList(s *string) []string {
	if s == nil {
		return nil
	}
	return DecodeList(*s)
}

// SplitInput splits free-form user input on the delimiter and trims each item.
// Blank input yields nil.
func SplitInput(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := DecodeList(s)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
