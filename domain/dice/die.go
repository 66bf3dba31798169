package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Faces is the number of faces of every die.
const Faces = 6

// MinDice is the smallest set of dice a series can be played with.
const MinDice = 3

// ErrConfiguration reports an unusable dice configuration.
var ErrConfiguration = errors.New("configuration error")

// ErrInvalidDieConfiguration reports a die that is not exactly six positive faces.
var ErrInvalidDieConfiguration = fmt.Errorf("%w: a die needs exactly %d positive integer faces", ErrConfiguration, Faces)

// Die is an immutable six-faced die.
type Die struct {
	faces [Faces]int
}

// New builds a die from faces. The slice is copied.
func New(faces []int) (*Die, error) {
	if len(faces) != Faces {
		return nil, fmt.Errorf("got %d faces: %w", len(faces), ErrInvalidDieConfiguration)
	}
	d := &Die{}
	for i, f := range faces {
		if f < 1 {
			return nil, fmt.Errorf("face %d is %d: %w", i, f, ErrInvalidDieConfiguration)
		}
		d.faces[i] = f
	}
	return d, nil
}

// Parse builds a die from a comma-separated list such as "1,2,3,4,5,6".
func Parse(s string) (*Die, error) {
	parts := strings.Split(s, ",")
	faces := make([]int, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("die %q: face %q is not an integer: %w", s, p, ErrInvalidDieConfiguration)
		}
		faces = append(faces, f)
	}
	d, err := New(faces)
	if err != nil {
		return nil, fmt.Errorf("die %q: %w", s, err)
	}
	return d, nil
}

// ParseSet parses every configuration and requires at least MinDice of them.
func ParseSet(configs []string) ([]*Die, error) {
	if len(configs) < MinDice {
		return nil, fmt.Errorf("%w: at least %d dice are required, got %d", ErrConfiguration, MinDice, len(configs))
	}
	set := make([]*Die, 0, len(configs))
	for _, c := range configs {
		d, err := Parse(c)
		if err != nil {
			return nil, err
		}
		set = append(set, d)
	}
	return set, nil
}

// Resolve returns the face at index mod 6. Every integer maps to a face.
func (d *Die) Resolve(index int) int {
	i := index % Faces
	if i < 0 {
		i += Faces
	}
	return d.faces[i]
}

// Faces returns a copy of the faces in order.
func (d *Die) Faces() []int {
	out := make([]int, Faces)
	copy(out, d.faces[:])
	return out
}

// String renders the die as "[2,2,4,4,9,9]".
func (d *Die) String() string {
	parts := make([]string, Faces)
	for i, f := range d.faces {
		parts[i] = strconv.Itoa(f)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
