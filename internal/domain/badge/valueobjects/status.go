package valueobjects

import "fmt"

type CardStatus string

const (
	StatusPending  CardStatus = "pending"
	StatusAssigned CardStatus = "assigned"
)

var validCardStatuses = map[CardStatus]bool{
	StatusPending:  true,
	StatusAssigned: true,
}

var cardStatusTransitions = map[CardStatus][]CardStatus{
	StatusPending: {StatusAssigned},
}

func NewCardStatus(s string) (CardStatus, error) {
	status := CardStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid card status: %s", s)
	}
	return status, nil
}

func (cs CardStatus) String() string {
	return string(cs)
}

func (cs CardStatus) IsValid() bool {
	return validCardStatuses[cs]
}

func (cs CardStatus) IsPending() bool {
	return cs == StatusPending
}

func (cs CardStatus) IsAssigned() bool {
	return cs == StatusAssigned
}

func (cs CardStatus) CanTransitionTo(next CardStatus) bool {
	for _, allowed := range cardStatusTransitions[cs] {
		if allowed == next {
			return true
		}
	}
	return false
}
