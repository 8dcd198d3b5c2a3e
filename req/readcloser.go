package req

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
)

// ErrBodyTooLarge is returned by ReadBody when a body exceeds the allowed size
var ErrBodyTooLarge = errors.New("request body too large")

// ReaderDummyCloser implements the Close method ontop of an io.Reader
// Used to pass an io.Reader for net/http.Request.Body
type ReaderDummyCloser struct {
	io.Reader
}

// Close implements a meaningless close method for ReaderDummyCloser
func (b ReaderDummyCloser) Close() error {
	return nil
}

// ReadBody reads at most limit bytes of the request body. The request body is
// replaced with a copy of the read bytes so it can be decoded again.
func ReadBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return []byte{}, nil
	}
	defer r.Body.Close()

	bodyBytes, err := ioutil.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	if int64(len(bodyBytes)) > limit {
		return nil, ErrBodyTooLarge
	}

	r.Body = ReaderDummyCloser{bytes.NewReader(bodyBytes)}

	return bodyBytes, nil
}
