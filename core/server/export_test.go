package server

// NewBindErrorForTest exposes newBindError to the external test package.
func NewBindErrorForTest(addr string, err error) error {
	return newBindError(addr, err)
}
