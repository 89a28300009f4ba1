package valueobjects

import (
	"fmt"
	"unicode/utf8"
)

const MaxCardIDLength = 64

// CardID is the identifier read from a physical NFC badge.
type CardID string

func NewCardID(s string) (CardID, error) {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return "", fmt.Errorf("card_id is required")
	}
	if n > MaxCardIDLength {
		return "", fmt.Errorf("card_id must be at most %d characters long", MaxCardIDLength)
	}
	return CardID(s), nil
}

func (c CardID) String() string {
	return string(c)
}
