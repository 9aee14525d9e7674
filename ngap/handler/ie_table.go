// SPDX-FileCopyrightText: 2026 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/omec-project/aper"
	"github.com/omec-project/corekube/logger"
)

var (
	ErrMissingIE     = errors.New("missing mandatory IE")
	ErrUnsupportedIE = errors.New("unsupported IE value")
)

// MissingIEError names the mandatory IE a request did not carry.
type MissingIEError struct {
	Procedure string
	ID        int64
	Name      string
}

func (e *MissingIEError) Error() string {
	return fmt.Sprintf("%s: missing mandatory IE %s (id %d)", e.Procedure, e.Name, e.ID)
}

func (e *MissingIEError) Is(target error) bool {
	return target == ErrMissingIE
}

// IEEntry is one protocol IE of a request in wire order.
type IEEntry struct {
	ID          int64
	Criticality aper.Enumerated
	Value       any
}

// IESpec is an IE a procedure knows how to handle.
type IESpec struct {
	ID   int64
	Name string
}

// IETable holds the recognised IEs of one request.
type IETable struct {
	procedure string
	names     map[int64]string
	values    map[int64]any
	ignored   []IEEntry
}

// ExtractIEs scans entries and keeps the value of each recognised IE. When an
// id occurs more than once the last occurrence wins. Unrecognised IEs are
// kept aside in Ignored.
func ExtractIEs(procedure string, entries []IEEntry, recognized ...IESpec) *IETable {
	t := &IETable{
		procedure: procedure,
		names:     make(map[int64]string, len(recognized)),
		values:    make(map[int64]any, len(recognized)),
	}
	for _, known := range recognized {
		t.names[known.ID] = known.Name
	}

	for _, entry := range entries {
		name, ok := t.names[entry.ID]
		if !ok {
			logger.NgapLog.Debugf("%s: ignore IE id %d", procedure, entry.ID)
			t.ignored = append(t.ignored, entry)
			continue
		}
		if _, dup := t.values[entry.ID]; dup {
			logger.NgapLog.Debugf("%s: duplicate IE %s, keeping the last one", procedure, name)
		}
		logger.NgapLog.Debugf("decode IE %s", name)
		t.values[entry.ID] = entry.Value
	}
	return t
}

// Require returns a *MissingIEError for the first id that is absent or nil.
func (t *IETable) Require(ids ...int64) error {
	for _, id := range ids {
		if isNil(t.values[id]) {
			return &MissingIEError{Procedure: t.procedure, ID: id, Name: t.names[id]}
		}
	}
	return nil
}

// Ignored returns the IEs whose id was not recognised.
func (t *IETable) Ignored() []IEEntry {
	return t.ignored
}

// IEValue returns the value stored for id as a T.
func IEValue[T any](t *IETable, id int64) (T, bool) {
	v, ok := t.values[id].(T)
	if ok && isNil(v) {
		ok = false
	}
	return v, ok
}

// isNil reports whether v is nil or a typed nil pointer, which is how the
// codec represents an IE whose value did not decode.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
