// Package tcp provides a blocking, frame-synchronous TCP endpoint for
// the controller/agent codec: a listener side that accepts one
// connection at a time, and a client side that dials out. Both share
// the same read_message/write_message framing logic (spec §4.6).
package tcp

import (
	"bufio"
	"errors"
	"io"
	"net"
	"strconv"
	"syscall"
	"time"

	"github.com/5g-empower/empower-enb-agent/api"
	"github.com/5g-empower/empower-enb-agent/logging"
)

// state is the framer's three-valued lifecycle (spec §4.6).
type state int

const (
	stateIdle state = iota
	stateListening
	stateConnected
)

const (
	lengthOffset  = 4
	versionOffset = 0
	wireVersion   = 2
	retryBackoff  = 100 * time.Millisecond
)

// Framer is a single-connection, blocking TCP endpoint. It is not safe
// for concurrent use: spec §5 schedules all I/O on one goroutine.
type Framer struct {
	listenAddr string
	port       int

	state    state
	listener *net.TCPListener
	conn     net.Conn
	reader   *bufio.Reader
}

// New constructs an idle framer over the given listen/client address
// and port.
func New(addr string, port int) *Framer {
	return &Framer{listenAddr: addr, port: port}
}

// OpenListening binds and listens on (address, port), transitioning
// Idle → Listening. Re-entry closes any existing descriptors first.
func (f *Framer) OpenListening() error {
	f.Close()
	ln, err := net.Listen("tcp", net.JoinHostPort(f.listenAddr, strconv.Itoa(f.port)))
	if err != nil {
		logging.Sugar.Errorw("framer: listen failed", "address", f.listenAddr, "port", f.port, "error", err)
		return api.NewCodecError(api.ErrIO, "framer: listen failed").WithContext("cause", err.Error())
	}
	f.listener = ln.(*net.TCPListener)
	f.state = stateListening
	logging.Sugar.Infow("framer: listening", "address", f.listenAddr, "port", f.port)
	return nil
}

// AcceptIfNeeded performs a blocking accept if Listening and not yet
// Connected, transitioning Listening → Connected.
func (f *Framer) AcceptIfNeeded() error {
	if f.state != stateListening {
		return nil
	}
	conn, err := f.listener.Accept()
	if err != nil {
		if isTimeout(err) {
			// Deadline set by Poll; returned unwrapped so Poll can tell it apart.
			return err
		}
		logging.Sugar.Errorw("framer: accept failed", "error", err)
		return api.NewCodecError(api.ErrIO, "framer: accept failed").WithContext("cause", err.Error())
	}
	f.setConnected(conn)
	logging.Sugar.Infow("framer: accepted connection", "remote", conn.RemoteAddr())
	return nil
}

// OpenClient attempts a blocking connect. It returns (false, nil) on a
// recoverable refusal, timeout, or interrupt, and a non-nil error for
// any other failure. On success it transitions to Connected.
func (f *Framer) OpenClient() (bool, error) {
	f.Close()
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(f.listenAddr, strconv.Itoa(f.port)), 10*time.Second)
	if err != nil {
		if isRecoverableConnectError(err) {
			logging.Sugar.Debugw("framer: connect recoverable failure, will retry", "address", f.listenAddr, "port", f.port, "error", err)
			return false, nil
		}
		logging.Sugar.Errorw("framer: connect failed", "address", f.listenAddr, "port", f.port, "error", err)
		return false, api.NewCodecError(api.ErrIO, "framer: connect failed").WithContext("cause", err.Error())
	}
	f.setConnected(conn)
	logging.Sugar.Infow("framer: connected", "address", f.listenAddr, "port", f.port)
	return true, nil
}

func (f *Framer) setConnected(conn net.Conn) {
	f.conn = conn
	f.reader = bufio.NewReader(conn)
	f.state = stateConnected
}

// Close closes both descriptors. Idempotent.
func (f *Framer) Close() {
	if f.conn == nil && f.listener == nil && f.state == stateIdle {
		return
	}
	if f.conn != nil {
		_ = f.conn.Close()
		f.conn = nil
		f.reader = nil
	}
	if f.listener != nil {
		_ = f.listener.Close()
		f.listener = nil
	}
	f.state = stateIdle
	logging.Sugar.Infow("framer: closed", "address", f.listenAddr, "port", f.port)
}

// Poll waits up to delay for data readable on the connected socket, a
// ready-to-accept listener, or an error. If the listener becomes ready
// and there is no connected socket, it accepts and recurses once. It
// returns true iff data is available on the connected socket.
func (f *Framer) Poll(delay time.Duration) (bool, error) {
	if f.state == stateListening {
		if err := f.listener.SetDeadline(time.Now().Add(delay)); err != nil {
			return false, api.NewCodecError(api.ErrIO, "framer: set accept deadline failed").WithContext("cause", err.Error())
		}
		if err := f.AcceptIfNeeded(); err != nil {
			if isTimeout(err) {
				return false, nil
			}
			return false, err
		}
		return f.Poll(delay)
	}
	if f.state != stateConnected {
		return false, nil
	}
	if err := f.conn.SetReadDeadline(time.Now().Add(delay)); err != nil {
		return false, api.NewCodecError(api.ErrIO, "framer: set read deadline failed").WithContext("cause", err.Error())
	}
	_, err := f.reader.Peek(1)
	_ = f.conn.SetReadDeadline(time.Time{})
	if err == nil {
		return true, nil
	}
	if isTimeout(err) {
		return false, nil
	}
	return false, nil
}

// Sleep sleeps for delay doing nothing, matching the spec's explicit
// no-op wait primitive used between polling attempts.
func (f *Framer) Sleep(delay time.Duration) { time.Sleep(delay) }

// ReadMessage performs a frame-synchronous read into dst, requiring
// dst.Size() >= 8. It drains the 8-byte preamble, parses the length
// field, drains the remainder, and silently discards frames with an
// unsupported version (spec §4.6).
func (f *Framer) ReadMessage(dst api.WritableView) (api.View, error) {
	if dst.Size() < protocolPreambleSize {
		return nil, api.NewCodecError(api.ErrBufferTooSmall, "framer: destination smaller than preamble").
			WithContext("size", dst.Size())
	}
	preambleBuf := make([]byte, protocolPreambleSize)
	if err := f.drain(preambleBuf); err != nil {
		if errors.Is(err, errConnectionGone) {
			f.Close()
			return emptyView(dst)
		}
		return nil, err
	}
	if err := writeBytes(dst, 0, preambleBuf); err != nil {
		return nil, err
	}
	length, err := dst.U32(lengthOffset)
	if err != nil {
		return nil, err
	}
	if int(length) < protocolPreambleSize {
		return nil, api.NewCodecError(api.ErrMalformed, "framer: declared length shorter than preamble").
			WithContext("length", length)
	}
	if int(length) > dst.Size() {
		return nil, api.NewCodecError(api.ErrMalformed, "framer: declared length exceeds destination capacity").
			WithContext("length", length).WithContext("capacity", dst.Size())
	}
	if int(length) > protocolPreambleSize {
		rest := make([]byte, int(length)-protocolPreambleSize)
		if err := f.drain(rest); err != nil {
			if errors.Is(err, errConnectionGone) {
				f.Close()
				return emptyView(dst)
			}
			return nil, err
		}
		if err := writeBytes(dst, protocolPreambleSize, rest); err != nil {
			return nil, err
		}
	}
	version, err := dst.U8(versionOffset)
	if err != nil {
		return nil, err
	}
	if version != wireVersion {
		return emptyView(dst)
	}
	return dst.Sub(0, int(length))
}

// WriteMessage drains frame's declared length to the socket, retrying
// on recoverable transient errors. A zero-byte write on EOF closes the
// connection and returns 0.
func (f *Framer) WriteMessage(frame api.View) (int, error) {
	length, err := frame.U32(lengthOffset)
	if err != nil {
		return 0, err
	}
	buf := frame.Raw()
	if int(length) < len(buf) {
		buf = buf[:length]
	}
	written := 0
	for written < len(buf) {
		n, err := f.conn.Write(buf[written:])
		if n > 0 {
			written += n
			continue
		}
		if err == nil {
			f.Close()
			return 0, nil
		}
		if isRetryable(err) {
			logging.Sugar.Debugw("framer: write retrying after transient error", "error", err, "backoff", retryBackoff)
			time.Sleep(retryBackoff)
			continue
		}
		f.Close()
		logging.Sugar.Errorw("framer: write failed", "error", err)
		return written, api.NewCodecError(api.ErrIO, "framer: write failed").WithContext("cause", err.Error())
	}
	return written, nil
}

var errConnectionGone = errors.New("framer: connection closed or reset")

const protocolPreambleSize = 8

// drain reads exactly len(buf) bytes from the connected socket's
// buffered reader, retrying on EINTR/EAGAIN/EWOULDBLOCK with a fixed
// backoff.
func (f *Framer) drain(buf []byte) error {
	read := 0
	for read < len(buf) {
		n, err := f.reader.Read(buf[read:])
		if n > 0 {
			read += n
			continue
		}
		if err == io.EOF || isConnectionGone(err) {
			return errConnectionGone
		}
		if isRetryable(err) {
			logging.Sugar.Debugw("framer: read retrying after transient error", "error", err, "backoff", retryBackoff)
			time.Sleep(retryBackoff)
			continue
		}
		logging.Sugar.Errorw("framer: read failed", "error", err)
		return api.NewCodecError(api.ErrIO, "framer: read failed").WithContext("cause", err.Error())
	}
	return nil
}

func writeBytes(v api.WritableView, offset int, buf []byte) error {
	for i, b := range buf {
		if err := v.PutU8(offset+i, b); err != nil {
			return err
		}
	}
	return nil
}

func emptyView(dst api.WritableView) (api.View, error) { return dst.Sub(0, 0) }

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func isConnectionGone(err error) bool {
	return errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNABORTED)
}

func isRetryable(err error) bool {
	return errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) || isTimeout(err)
}

func isRecoverableConnectError(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.ETIMEDOUT) || isTimeout(err)
}
