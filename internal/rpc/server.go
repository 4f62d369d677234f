// Package rpc serves the pure calculators and lookups over JSON-RPC 2.0 so
// scripts and other tools can call them without going through the CLI.
package rpc

import (
	"context"
	"io"

	"github.com/sourcegraph/jsonrpc2"
)

// Serve answers requests on rwc until the peer disconnects or ctx is done.
// Messages are bare JSON objects, one after another.
func Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.PlainObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, NewHandler())
	select {
	case <-ctx.Done():
		conn.Close()
		return ctx.Err()
	case <-conn.DisconnectNotify():
		return nil
	}
}

type stdioReadWriteCloser struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

// Stdio joins a reader and a writer, typically os.Stdin and os.Stdout,
// into the stream Serve expects.
func Stdio(in io.ReadCloser, out io.WriteCloser) io.ReadWriteCloser {
	return &stdioReadWriteCloser{reader: in, writer: out}
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	rerr := s.reader.Close()
	werr := s.writer.Close()
	if rerr != nil {
		return rerr
	}
	return werr
}
