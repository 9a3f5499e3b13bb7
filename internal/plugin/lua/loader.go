package lua

import "errors"

// LoadScripts runs the scripts in order in one shared state. Every script
// is tried; the returned error joins the failures and the state keeps what
// the successful scripts declared. The caller must Close the state.
func LoadScripts(paths []string, opts ...StateOption) (*State, error) {
	s, err := NewState(opts...)
	if err != nil {
		return nil, err
	}
	var errs []error
	for _, path := range paths {
		if err := s.DoFile(path); err != nil {
			errs = append(errs, err)
		}
	}
	return s, errors.Join(errs...)
}
