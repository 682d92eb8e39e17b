package watch

import (
	"errors"
	"io"
	"net"

	"github.com/gobwas/ws/wsutil"
)

// IsErrClosed checks whether an error indicates a closed connection.
func IsErrClosed(err error) bool {
	if err == nil {
		return false
	}
	var closed wsutil.ClosedError
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.As(err, &closed)
}
