package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/favorites"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
	"github.com/cristianoliveira/swipewaifu/internal/storage"
	"github.com/cristianoliveira/swipewaifu/internal/waifu"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	kv     *storage.MemoryKV
	favs   *favorites.Store
	prefs  *preferences.Store
	client *waifu.Client
	paths  []string
}

func (f *fakeBackend) Favorites() (*favorites.Store, error)    { return f.favs, nil }
func (f *fakeBackend) Preferences() (*preferences.Store, error) { return f.prefs, nil }
func (f *fakeBackend) Client() (*waifu.Client, error)           { return f.client, nil }

// newFakeBackend serves numbered image URLs from an httptest server.
func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	f := &fakeBackend{kv: storage.NewMemory()}

	var n atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i := n.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"url":"https://i.waifu.pics/%d%s.png"}`, i, strings.ReplaceAll(r.URL.Path, "/", "-"))
	}))
	t.Cleanup(srv.Close)

	var err error
	f.favs, err = favorites.Load(f.kv)
	require.NoError(t, err)
	f.prefs, err = preferences.Load(f.kv)
	require.NoError(t, err)
	f.client = waifu.NewClient(waifu.WithBaseURL(srv.URL), waifu.WithRequestInterval(0))
	return f
}

// execute runs c with args and returns what it wrote to stdout.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

// captureColors redirects console messages for the duration of the test.
func captureColors(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	colors.SetOutput(&buf, &buf)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return &buf
}

func withTerminal(t *testing.T, stdout, stdin bool) {
	t.Helper()
	origOut, origIn := stdoutIsTerminal, stdinIsTerminal
	stdoutIsTerminal = func() bool { return stdout }
	stdinIsTerminal = func() bool { return stdin }
	t.Cleanup(func() { stdoutIsTerminal, stdinIsTerminal = origOut, origIn })
}

func withConfirmInput(t *testing.T, answer string) {
	t.Helper()
	orig := confirmInput
	confirmInput = strings.NewReader(answer)
	t.Cleanup(func() { confirmInput = orig })
}

// captureProgram replaces the full-screen runner and returns the model it
// was given.
func captureProgram(t *testing.T) *tea.Model {
	t.Helper()
	var got tea.Model
	orig := runProgram
	runProgram = func(_ context.Context, m tea.Model) error {
		got = m
		return nil
	}
	t.Cleanup(func() { runProgram = orig })
	return &got
}
