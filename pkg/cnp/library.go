package cnp

// DefaultLibrary is the file name of the CANape API library matching the
// pointer width of the running process.
func DefaultLibrary() string {
	if PtrSize == 8 {
		return "CANapAPI64.dll"
	}
	return "CANapAPI.dll"
}
