// Package save persists the flat key-value save record: the player's world
// position, facing and equipped weapon.
package save

import (
	"context"
	"errors"
	"strconv"
)

// ErrNotFound is returned by Load when no record has been saved.
var ErrNotFound = errors.New("save: no record")

// ErrMalformed is returned by Load when a stored value cannot be decoded.
var ErrMalformed = errors.New("save: malformed record")

// Record is what a save holds.
type Record struct {
	X, Y      int
	Direction string
	Weapon    string
}

// Store is a persistence backend.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context) (Record, error)
	Delete(ctx context.Context) error
	Close() error
}

const (
	keyX         = "player_x"
	keyY         = "player_y"
	keyDirection = "direction"
	keyWeapon    = "weapon"
)

func (r Record) pairs() map[string]string {
	return map[string]string{
		keyX:         strconv.Itoa(r.X),
		keyY:         strconv.Itoa(r.Y),
		keyDirection: r.Direction,
		keyWeapon:    r.Weapon,
	}
}

func decode(kv map[string]string) (Record, error) {
	if len(kv) == 0 {
		return Record{}, ErrNotFound
	}
	var rec Record
	var err error
	if rec.X, err = strconv.Atoi(kv[keyX]); err != nil {
		return Record{}, errors.Join(ErrMalformed, err)
	}
	if rec.Y, err = strconv.Atoi(kv[keyY]); err != nil {
		return Record{}, errors.Join(ErrMalformed, err)
	}
	rec.Direction = kv[keyDirection]
	rec.Weapon = kv[keyWeapon]
	return rec, nil
}
