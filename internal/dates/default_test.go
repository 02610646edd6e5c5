package dates

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nl-dates/pkg/datemath"
)

type stubClient struct{ name string }

func (s *stubClient) ParseDate(ctx context.Context, phrase string, ref datemath.Date) (string, error) {
	return s.name, nil
}

func (s *stubClient) ExtractDateFromTask(ctx context.Context, taskText string, ref datemath.Date) (Extraction, error) {
	return Extraction{CleanedText: s.name}, nil
}

func TestDefaultClient_GetBuildsOnce(t *testing.T) {
	calls := 0
	built := &stubClient{name: "built"}
	slot := NewDefaultClient(func(ctx context.Context) (Client, error) {
		calls++
		return built, nil
	})

	c1, err := slot.Get(context.Background())
	require.NoError(t, err)
	c2, err := slot.Get(context.Background())
	require.NoError(t, err)

	assert.Same(t, built, c1)
	assert.Same(t, c1, c2)
	assert.Equal(t, 1, calls)
}

func TestDefaultClient_SetOverridesFactory(t *testing.T) {
	slot := NewDefaultClient(func(ctx context.Context) (Client, error) {
		t.Fatal("factory must not be called when a client is registered")
		return nil, nil
	})
	registered := &stubClient{name: "registered"}
	slot.Set(registered)

	c, err := slot.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, registered, c)
}

func TestDefaultClient_ClearRebuilds(t *testing.T) {
	calls := 0
	slot := NewDefaultClient(func(ctx context.Context) (Client, error) {
		calls++
		return &stubClient{name: "fresh"}, nil
	})
	slot.Set(&stubClient{name: "old"})
	slot.Clear()

	c, err := slot.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", c.(*stubClient).name)
	assert.Equal(t, 1, calls)

	slot.Set(nil)
	_, err = slot.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDefaultClient_FactoryError(t *testing.T) {
	cfgErr := &ConfigurationError{Reason: "OPENAI_API_KEY is not set"}
	fail := true
	slot := NewDefaultClient(func(ctx context.Context) (Client, error) {
		if fail {
			return nil, cfgErr
		}
		return &stubClient{name: "ok"}, nil
	})

	_, err := slot.Get(context.Background())
	var target *ConfigurationError
	require.True(t, errors.As(err, &target))

	fail = false
	c, err := slot.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", c.(*stubClient).name)
}

func TestDefaultClient_NilFactory(t *testing.T) {
	_, err := NewDefaultClient(nil).Get(context.Background())

	var target *ConfigurationError
	assert.True(t, errors.As(err, &target))
}

func TestDefaultClient_Resolve(t *testing.T) {
	registered := &stubClient{name: "registered"}
	explicit := &stubClient{name: "explicit"}
	slot := NewDefaultClient(nil)
	slot.Set(registered)

	c, err := slot.Resolve(context.Background(), explicit)
	require.NoError(t, err)
	assert.Same(t, explicit, c)

	c, err = slot.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Same(t, registered, c)
}

func TestDefaultClient_ConcurrentAccess(t *testing.T) {
	slot := NewDefaultClient(func(ctx context.Context) (Client, error) {
		return &stubClient{name: "built"}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				slot.Set(&stubClient{name: "set"})
			}
			_, _ = slot.Get(context.Background())
		}(i)
	}
	wg.Wait()

	c, err := slot.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, c)
}
