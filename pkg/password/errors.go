package password

import (
	cerr "github.com/cockroachdb/errors"
)

var (
	// ErrInvalidLength is returned when Policy.Length is below MinLength.
	ErrInvalidLength = cerr.New("invalid password length")

	// ErrNoCharacterClassSelected is returned when every include flag is off.
	ErrNoCharacterClassSelected = cerr.New("no character class selected")
)
