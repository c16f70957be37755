package fetch

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClientOptions_Timeout(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		o := newClientOptions("http://example.test", nil)
		assert.Equal(t, defaultTimeout, o.httpClient.Timeout)
	})

	t.Run("timeout on owned client", func(t *testing.T) {
		o := newClientOptions("http://example.test", []Option{WithTimeout(5 * time.Second)})
		assert.Equal(t, 5*time.Second, o.httpClient.Timeout)
	})

	t.Run("shared client is not modified", func(t *testing.T) {
		shared := &http.Client{Timeout: time.Minute}
		o := newClientOptions("http://example.test", []Option{
			WithHTTPClient(shared),
			WithTimeout(2 * time.Second),
		})

		assert.Equal(t, time.Minute, shared.Timeout)
		assert.Equal(t, 2*time.Second, o.httpClient.Timeout)
		assert.NotSame(t, shared, o.httpClient)
	})

	t.Run("default client is not modified", func(t *testing.T) {
		before := http.DefaultClient.Timeout
		o := newClientOptions("http://example.test", []Option{
			WithHTTPClient(http.DefaultClient),
			WithTimeout(3 * time.Second),
		})

		assert.Equal(t, before, http.DefaultClient.Timeout)
		assert.Equal(t, 3*time.Second, o.httpClient.Timeout)
	})

	t.Run("shared client without timeout option is used as is", func(t *testing.T) {
		shared := &http.Client{}
		o := newClientOptions("http://example.test", []Option{WithHTTPClient(shared)})
		assert.Same(t, shared, o.httpClient)
	})
}
