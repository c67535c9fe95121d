package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/moodkeeper/internal/client/client"
)

func TestStartOnlineStatusWatcher_TracksServer(t *testing.T) {
	f := &fakeClient{}
	a, _ := newTestApp(f)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
	}()

	require.Eventually(t, func() bool { return a.Mode() == ModeOnline }, time.Second, 5*time.Millisecond)

	f.setPingErr(client.ErrUnavailable)
	require.Eventually(t, func() bool { return a.Mode() == ModeOffline }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp(&fakeClient{})
	assert.Equal(t, "", a.getStatus())

	a.setMode(ModeOnline)
	assert.Equal(t, "(online)", a.getStatus())

	a.userName = "ana"
	assert.Equal(t, "(ana online)", a.getStatus())
}

func TestRun_ExitsOnQuit(t *testing.T) {
	f := &fakeClient{pingErr: errors.New("down")}
	a, out := newTestApp(f, "help", "quit")
	a.config.OnlineCheckInterval = time.Hour

	a.Run(context.Background())

	assert.True(t, f.closed)
	assert.Contains(t, out.String(), "Bye!")
}
