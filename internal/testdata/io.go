package testdata

// ErrReader is an io.Reader which fails every read with Err.
type ErrReader struct {
	Err error
}

func (e *ErrReader) Read(_ []byte) (int, error) {
	return 0, e.Err
}

// ErrWriter is an io.Writer which fails every write with Err.
type ErrWriter struct {
	Err error
}

func (e *ErrWriter) Write(_ []byte) (int, error) {
	return 0, e.Err
}
