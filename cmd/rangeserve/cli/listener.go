package cli

import (
	"errors"
	"net"
	"os"
	"sync"
	"time"
)

// Listener wraps a net.Listener and wraps every accepted connection in a Conn,
// so that each read and write operation gets its own deadline. A slow client
// downloading a large range is therefore only disconnected if it stops
// reading entirely.
type Listener struct {
	net.Listener
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (l *Listener) Accept() (net.Conn, error) {
	c, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}

	MetricsOpenConnections.Inc()

	tc := &Conn{
		Conn:         c,
		ReadTimeout:  l.ReadTimeout,
		WriteTimeout: l.WriteTimeout,
	}

	// Set the deadlines when the connection is accepted. They will
	// get extended after successful read and write operations.
	if err := tc.extendDeadline(tc.Conn.SetReadDeadline, l.ReadTimeout); err != nil {
		tc.Close()
		return nil, err
	}
	if err := tc.extendDeadline(tc.Conn.SetWriteDeadline, l.WriteTimeout); err != nil {
		tc.Close()
		return nil, err
	}

	return tc, nil
}

// Conn wraps a net.Conn, and sets a deadline for every read
// and write operation.
type Conn struct {
	net.Conn
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// closeOnce guards the decrement of the open connections gauge.
	closeOnce sync.Once
}

func (c *Conn) extendDeadline(set func(time.Time) error, timeout time.Duration) error {
	if timeout <= 0 {
		return set(time.Time{})
	}

	return set(time.Now().Add(timeout))
}

func (c *Conn) Read(b []byte) (int, error) {
	n, err := c.Conn.Read(b)
	if !isTimeoutError(err) && c.ReadTimeout > 0 {
		if err2 := c.extendDeadline(c.Conn.SetReadDeadline, c.ReadTimeout); err == nil {
			err = err2
		}
	}

	return n, err
}

func (c *Conn) Write(b []byte) (int, error) {
	n, err := c.Conn.Write(b)
	if !isTimeoutError(err) && c.WriteTimeout > 0 {
		if err2 := c.extendDeadline(c.Conn.SetWriteDeadline, c.WriteTimeout); err == nil {
			err = err2
		}
	}

	return n, err
}

func (c *Conn) Close() error {
	c.closeOnce.Do(MetricsOpenConnections.Dec)

	return c.Conn.Close()
}

func NewListener(addr string, readTimeout, writeTimeout time.Duration) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Listener{
		Listener:     l,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}, nil
}

// NewUnixListener binds to a UNIX socket. A stale socket file left at path
// is removed first, while any other kind of file causes an error.
func NewUnixListener(path string, readTimeout, writeTimeout time.Duration) (net.Listener, error) {
	stat, err := os.Stat(path)
	switch {
	case err != nil && !os.IsNotExist(err):
		return nil, err
	case err == nil && stat.Mode()&os.ModeSocket == 0:
		return nil, errors.New("specified path is not a socket")
	case err == nil:
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	}

	l, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}

	return &Listener{
		Listener:     l,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}, nil
}

// isTimeoutError checks if err is a network timeout error.
func isTimeoutError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
