// Package fs loads the department datasets from JSON files.
package fs

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/fwojciec/deptbrain"
)

// LoadFaculty reads the faculty dataset at path. The load is atomic: any
// read, parse, or validation failure returns an error and no records.
func LoadFaculty(path string) ([]*deptbrain.Faculty, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, deptbrain.Errorf(deptbrain.ENOTFOUND, "faculty file %q not found", path)
		}
		return nil, deptbrain.Errorf(deptbrain.EINVALID, "read faculty file %q: %v", path, err)
	}

	var records []*deptbrain.Faculty
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, deptbrain.Errorf(deptbrain.EINVALID, "parse faculty file %q: %v", path, err)
	}
	for i, f := range records {
		if f == nil {
			return nil, deptbrain.Errorf(deptbrain.EINVALID, "faculty file %q: record %d is null", path, i)
		}
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// LoadNotes reads the department notes dataset at path. Notes are optional:
// a missing file loads no notes and is not an error.
func LoadNotes(path string) ([]*deptbrain.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, deptbrain.Errorf(deptbrain.EINVALID, "read notes file %q: %v", path, err)
	}

	var notes []*deptbrain.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, deptbrain.Errorf(deptbrain.EINVALID, "parse notes file %q: %v", path, err)
	}
	for i, n := range notes {
		if n == nil {
			return nil, deptbrain.Errorf(deptbrain.EINVALID, "notes file %q: record %d is null", path, i)
		}
		if err := n.Validate(); err != nil {
			return nil, err
		}
	}
	return notes, nil
}
