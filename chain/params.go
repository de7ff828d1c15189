package chain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFork is returned when a fork name is not supported
var ErrUnknownFork = errors.New("unknown fork")

// predefined forks
const (
	Byzantium = "byzantium"
	Istanbul  = "istanbul"
	Berlin    = "berlin"
)

// forkOrder lists the supported forks in activation order
var forkOrder = []string{Byzantium, Istanbul, Berlin}

// Forks specifies when each fork is activated
type Forks map[string]*Fork

// At returns the forks active at the given block
func (f *Forks) At(block uint64) ForksInTime {
	return ForksInTime{
		Byzantium: active((*f)[Byzantium], block),
		Istanbul:  active((*f)[Istanbul], block),
		Berlin:    active((*f)[Berlin], block),
	}
}

type Fork uint64

func NewFork(n uint64) *Fork {
	f := Fork(n)

	return &f
}

func (f Fork) Active(block uint64) bool {
	return block >= uint64(f)
}

// ForksInTime is the set of forks active at a given block
type ForksInTime struct {
	Byzantium,
	Istanbul,
	Berlin bool
}

// GasTable returns the precompile gas prices for the active forks
func (f ForksInTime) GasTable() GasTable {
	if f.Berlin {
		return GasTableBerlin
	}

	return GasTableByzantium
}

// AllForksEnabled should contain all supported forks by current edge version
var AllForksEnabled = &Forks{
	Byzantium: NewFork(0),
	Istanbul:  NewFork(0),
	Berlin:    NewFork(0),
}

func active(ff *Fork, block uint64) bool {
	if ff == nil {
		return false
	}

	return ff.Active(block)
}

func IsForkAvailable(name string) bool {
	for _, fork := range forkOrder {
		if fork == strings.ToLower(name) {
			return true
		}
	}

	return false
}

// ForksUpTo returns the forks enabled from genesis up to and including the named one
func ForksUpTo(name string) (*Forks, error) {
	name = strings.ToLower(name)

	if !IsForkAvailable(name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFork, name)
	}

	forks := Forks{}

	for _, fork := range forkOrder {
		forks[fork] = NewFork(0)

		if fork == name {
			break
		}
	}

	return &forks, nil
}
