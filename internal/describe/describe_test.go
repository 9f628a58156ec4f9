package describe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"description":"A bright solar lamp.","tags":["#solar","#garden"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	got, err := c.Generate(context.Background(), "Solar Light", "Home & Garden", "eco, warm")
	require.NoError(t, err)
	assert.Equal(t, "A bright solar lamp.", got.Description)
	assert.Equal(t, []string{"#solar", "#garden"}, got.Tags)
}

func TestClientGenerateErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Generate(context.Background(), "Solar Light", "Home & Garden", "")
	assert.Error(t, err)

	_, err = c.Generate(context.Background(), "", "Home & Garden", "")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestFallbackGenerate(t *testing.T) {
	g := Fallback{}
	got, err := g.Generate(context.Background(), "Solar Light", "Home & Garden", "eco friendly, warm glow")
	require.NoError(t, err)
	assert.Contains(t, got.Description, "Solar Light")
	assert.Contains(t, got.Description, "Home & Garden")
	assert.Contains(t, got.Tags, "#ecofriendly")

	_, err = g.Generate(context.Background(), "Solar Light", "", "")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestTrackerLifecycle(t *testing.T) {
	tr := NewTracker()
	tr.SetResetDelay(30 * time.Millisecond)
	assert.Equal(t, StatusIdle, tr.Status())

	tr.Begin()
	assert.Equal(t, StatusLoading, tr.Status())

	tr.Finish(nil)
	assert.Equal(t, StatusSuccess, tr.Status())

	assert.Eventually(t, func() bool { return tr.Status() == StatusIdle }, time.Second, 5*time.Millisecond)

	tr.Begin()
	tr.Finish(errors.New("boom"))
	assert.Equal(t, StatusError, tr.Status())

	// a new request cancels the pending reset
	tr.Begin()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, StatusLoading, tr.Status())
}
