package dashboard_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HungEzz/surfsui/pkg/dashboard"
)

type commitRecorder struct {
	mu    sync.Mutex
	terms []string
}

func (r *commitRecorder) commit(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = append(r.terms, term)
}

func (r *commitRecorder) committed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.terms...)
}

func (r *commitRecorder) waitFor(t *testing.T, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(r.committed()) >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d commits, got %v", want, r.committed())
}

func TestSearchInputDebouncesTyping(t *testing.T) {
	recorder := &commitRecorder{}
	input := dashboard.NewSearchInput(recorder.commit, dashboard.WithDebounceDelay(20*time.Millisecond))
	defer input.Stop()

	input.Type("c")
	input.Type("ce")
	input.Type("cet")

	recorder.waitFor(t, 1)
	assert.Equal(t, []string{"cet"}, recorder.committed(), "only the final term is committed")
}

func TestSearchInputEnterBypassesDebounce(t *testing.T) {
	recorder := &commitRecorder{}
	input := dashboard.NewSearchInput(recorder.commit, dashboard.WithDebounceDelay(time.Hour))
	defer input.Stop()

	input.Type("cetus")
	input.Enter()

	assert.Equal(t, []string{"cetus"}, recorder.committed())

	// The cancelled timer must not fire a duplicate later.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"cetus"}, recorder.committed())
}

func TestSearchInputUnchangedTermDoesNotCommit(t *testing.T) {
	recorder := &commitRecorder{}
	input := dashboard.NewSearchInput(recorder.commit, dashboard.WithDebounceDelay(10*time.Millisecond))
	defer input.Stop()

	input.Type("cetus")
	recorder.waitFor(t, 1)

	input.Type("cetus")
	input.Enter()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, []string{"cetus"}, recorder.committed())
}

func TestSearchInputClear(t *testing.T) {
	recorder := &commitRecorder{}
	input := dashboard.NewSearchInput(recorder.commit, dashboard.WithDebounceDelay(time.Hour))
	defer input.Stop()

	input.Type("cetus")
	input.Enter()
	input.Clear()

	require.Equal(t, []string{"cetus", ""}, recorder.committed())
}

func TestSearchInputStopCancelsPendingCommit(t *testing.T) {
	recorder := &commitRecorder{}
	input := dashboard.NewSearchInput(recorder.commit, dashboard.WithDebounceDelay(10*time.Millisecond))

	input.Type("cetus")
	input.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, recorder.committed())
}
