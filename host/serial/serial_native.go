package serial

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/tarm/serial"
)

// NativePort wraps a tarm/serial port.
type NativePort struct {
	port   io.ReadWriteCloser
	cfg    *Config
	closed atomic.Bool
}

// Open opens the device named in cfg.
func Open(cfg *Config) (*NativePort, error) {
	if cfg == nil {
		return nil, errors.New("serial: config cannot be nil")
	}
	if cfg.Device == "" {
		return nil, errors.New("serial: no device given")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &NativePort{port: port, cfg: cfg}, nil
}

// Device returns the path the port was opened on.
func (p *NativePort) Device() string { return p.cfg.Device }

// Read implements io.Reader. On Linux tarm/serial reports a read timeout with
// no data as 0, io.EOF; while the port is open that is reported as 0, nil so
// callers keep polling through the gaps between frames. io.EOF is returned
// only after Close.
func (p *NativePort) Read(b []byte) (int, error) {
	n, err := p.port.Read(b)
	if n == 0 && errors.Is(err, io.EOF) && !p.closed.Load() {
		return 0, nil
	}
	return n, err
}

// Write implements io.Writer.
func (p *NativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close implements io.Closer.
func (p *NativePort) Close() error {
	if p.closed.Swap(true) || p.port == nil {
		return nil
	}
	return p.port.Close()
}
