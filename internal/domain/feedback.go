package domain

import (
	"fmt"
	"time"
)

type Satisfaction string

const (
	SatisfactionVeryHappy Satisfaction = "VerySatisfied"
	SatisfactionHappy     Satisfaction = "Satisfied"
	SatisfactionNeutral   Satisfaction = "Neutral"
	SatisfactionUnhappy   Satisfaction = "Unsatisfied"
)

func ParseSatisfaction(s string) (Satisfaction, error) {
	switch v := Satisfaction(s); v {
	case SatisfactionVeryHappy, SatisfactionHappy, SatisfactionNeutral, SatisfactionUnhappy:
		return v, nil
	}
	return "", fmt.Errorf("%w: satisfaction %q", ErrInvalidValue, s)
}

// ClientFeedback is a response from the public feedback form. Feedback is
// append-only: there is no update or delete path.
type ClientFeedback struct {
	ID           string       `json:"id"`
	ClientName   string       `json:"clientName"`
	Satisfaction Satisfaction `json:"satisfaction"`
	Rating       int          `json:"rating"`
	Feedback     string       `json:"feedback"`
	Date         time.Time    `json:"date"`
}
