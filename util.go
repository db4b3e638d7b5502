package beautify

import (
	"errors"
)

// checkErrors rolls up an error channel into a single error. Repeats of the
// same error (every worker seeing one cancelled context) are reported once.
func checkErrors(errs <-chan error) error {
	var all []error

	for err := range errs {
		if err == nil {
			continue
		}
		dup := false
		for _, seen := range all {
			if errors.Is(err, seen) {
				dup = true
				break
			}
		}
		if !dup {
			all = append(all, err)
		}
	}

	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return errors.Join(all...)
}
