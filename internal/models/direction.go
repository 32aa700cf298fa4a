package models

import (
	"errors"
	"fmt"
)

var ErrInvalidDirection = errors.New("invalid direction")

// Direction is the committed outcome of a swipe.
type Direction string

const (
	Like  Direction = "like"
	Nope  Direction = "nope"
	Super Direction = "super"
)

var directions = map[string]Direction{
	"like":  Like,
	"nope":  Nope,
	"super": Super,
}

func ParseDirection(s string) (Direction, error) {
	d, ok := directions[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}
