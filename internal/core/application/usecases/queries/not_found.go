package queries

import (
	"errors"

	"delivery-api/internal/pkg/errs"
)

// notFoundAsMiss turns a repository miss into a nil error so that loaders can report
// found=false instead of failing.
func notFoundAsMiss(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}
