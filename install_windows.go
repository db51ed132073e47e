package canape

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// InstallPath is the CANape installation directory.
func InstallPath() (string, error) {
	return registryValue("Path")
}

// DataPath is the directory CANape keeps its user data in.
func DataPath() (string, error) {
	return registryValue("DataPath")
}

func registryValue(name string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, registryKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("CANape not installed: %w", err)
	}
	defer k.Close()
	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s\\%s: %w", registryKey, name, err)
	}
	return v, nil
}
