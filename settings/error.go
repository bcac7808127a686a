package settings

import "github.com/oomph-ac/lookat/oerror"

// errorf returns an *oerror.Error prefixed with the package name.
func errorf(format string, args ...any) error {
	return oerror.New("settings: "+format, args...)
}
