package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/dto"
)

// Timeout puts a deadline of d on every request context, which makes a
// store transaction still running at that point abort and roll back. A
// handler that is still busy when the deadline passes loses its response:
// the client gets a 504 problem and later writes fail with
// http.ErrHandlerTimeout. d <= 0 disables the middleware.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			held := &heldResponse{header: http.Header{}}
			finished := make(chan any, 1)
			go func() {
				var panicVal any
				defer func() {
					if v := recover(); v != nil {
						panicVal = v
					}
					finished <- panicVal
				}()
				next.ServeHTTP(held, r.WithContext(ctx))
			}()

			select {
			case v := <-finished:
				if v != nil {
					// Recovery, further out, turns it into a 500.
					panic(v)
				}
				held.release(w)
			case <-ctx.Done():
				held.abandon()
				dto.WriteProblem(w, r, http.StatusGatewayTimeout, "request exceeded "+d.String())
			}
		})
	}
}

// heldResponse buffers a handler's response until Timeout decides whether
// to release it or abandon it.
type heldResponse struct {
	mu        sync.Mutex
	header    http.Header
	code      int
	body      bytes.Buffer
	abandoned bool
}

func (h *heldResponse) Header() http.Header {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.header
}

func (h *heldResponse) WriteHeader(code int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.code == 0 && !h.abandoned {
		h.code = code
	}
}

func (h *heldResponse) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if h.code == 0 {
		h.code = http.StatusOK
	}
	return h.body.Write(p)
}

func (h *heldResponse) abandon() {
	h.mu.Lock()
	h.abandoned = true
	h.mu.Unlock()
}

// release copies the held response to w.
func (h *heldResponse) release(w http.ResponseWriter) {
	h.mu.Lock()
	defer h.mu.Unlock()

	maps.Copy(w.Header(), h.header)
	if h.code != 0 {
		w.WriteHeader(h.code)
	}
	if h.body.Len() > 0 {
		_, _ = h.body.WriteTo(w)
	}
}
