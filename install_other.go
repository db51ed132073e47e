//go:build !windows

package canape

import "github.com/roffe/gocanape/pkg/cnp"

func InstallPath() (string, error) {
	return "", cnp.ErrUnsupportedPlatform
}

func DataPath() (string, error) {
	return "", cnp.ErrUnsupportedPlatform
}
