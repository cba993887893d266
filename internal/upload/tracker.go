// Package upload tracks in-flight file uploads as inline placeholder
// tokens. A placeholder is inserted into the document immediately; when the
// upload settles, the token is replaced with the returned markdown. Tokens
// render as pending image syntax so the document stays readable while the
// upload runs.
package upload

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// Func performs the actual upload and returns the markdown that replaces
// the placeholder, typically an image reference.
type Func func(ctx context.Context, name string, r io.Reader) (string, error)

// Result is the settled outcome of an upload.
type Result struct {
	Text string
	Err  error
}

// Placeholder pairs an inline token with the pending upload that will
// replace it.
type Placeholder struct {
	// Token is the unique inline text standing in for the upload.
	Token string

	resolution <-chan Result
}

// Resolution returns a channel that yields exactly one Result when the
// upload settles.
func (p Placeholder) Resolution() <-chan Result {
	return p.resolution
}

// Tracker creates placeholders with process-unique tokens.
type Tracker struct {
	seq atomic.Uint64
}

// NewTracker creates a tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Create builds an insert-ready placeholder for the named file and starts the upload
// on its own goroutine. taken reports whether a candidate token already
// occurs in the current text; tokens are regenerated until free. A nil
// taken accepts the first candidate.
func (t *Tracker) Create(ctx context.Context, name string, r io.Reader, up Func, taken func(string) bool) Placeholder {
	token := t.newToken(name, taken)

	ch := make(chan Result, 1)
	go func() {
		text, err := up(ctx, name, r)
		ch <- Result{Text: text, Err: err}
	}()

	return Placeholder{Token: token, resolution: ch}
}

// newToken builds a pending-image token embedding a counter and a random
// component, retrying on the vanishingly unlikely collision.
func (t *Tracker) newToken(name string, taken func(string) bool) string {
	for {
		id := fmt.Sprintf("%d-%s", t.seq.Add(1), randomHex(4))
		token := fmt.Sprintf("![Uploading %s %s]()", name, id)
		if taken == nil || !taken(token) {
			return token
		}
	}
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
