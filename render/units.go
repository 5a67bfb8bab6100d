// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultTextureUnits is the number of combined texture units every
// GL 3.3+ implementation provides for the fragment stage.
const DefaultTextureUnits = 16

// UnitAllocator hands out texture units in increasing order, one per
// texture. Units are never returned. It is safe for concurrent use.
type UnitAllocator struct {
	mu    sync.Mutex
	next  int
	limit int
}

// NewUnitAllocator returns an allocator for limit units. A limit of
// zero or less means DefaultTextureUnits.
func NewUnitAllocator(limit int) *UnitAllocator {
	if limit <= 0 {
		limit = DefaultTextureUnits
	}
	return &UnitAllocator{limit: limit}
}

// Claim returns the next free unit.
func (u *UnitAllocator) Claim() (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.next >= u.limit {
		return 0, errors.Wrapf(ErrNoTextureUnits, "all %d units claimed", u.limit)
	}
	unit := u.next
	u.next++
	log.WithField("unit", unit).Debug("texture unit claimed")
	return unit, nil
}

// Claimed returns how many units have been handed out.
func (u *UnitAllocator) Claimed() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.next
}
