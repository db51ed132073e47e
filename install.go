package canape

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roffe/gocanape/pkg/cnp"
)

const registryKey = `SOFTWARE\VECTOR\CANape`

// libraryDirs are the directories below the CANape installation that
// may hold the API library.
var libraryDirs = []string{"CANapeAPI", "Exec64", "Exec", ""}

// LibraryPath locates the CANape API library of the installed CANape.
func LibraryPath() (string, error) {
	dir, err := InstallPath()
	if err != nil {
		return "", err
	}
	name := cnp.DefaultLibrary()
	for _, sub := range libraryDirs {
		p := filepath.Join(dir, sub, name)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: no %s below %s", cnp.ErrLibraryNotFound, name, dir)
}
