package speech

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidu/english/internal/logger"
)

func newTestTTS(t *testing.T, handler http.HandlerFunc) *GoogleTTS {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewGoogleTTS(Config{APIKey: "test-key", Endpoint: srv.URL, CacheDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	return g
}

func TestAudio_SynthesizesAndCaches(t *testing.T) {
	var calls atomic.Int32
	g := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Empty(t, r.URL.RawQuery)

		var body synthesizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "apple", body.Input.Text)
		assert.Equal(t, LocaleUK, body.Voice.LanguageCode)
		assert.Equal(t, "MP3", body.AudioConfig.AudioEncoding)
		assert.InDelta(t, 0.9, body.AudioConfig.SpeakingRate, 1e-9)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"audioContent": base64.StdEncoding.EncodeToString([]byte("mp3-bytes")),
		})
	})

	ctx := context.Background()
	path, err := g.Audio(ctx, "apple", LocaleUK)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mp3-bytes", string(data))

	again, err := g.Audio(ctx, "apple", LocaleUK)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAudio_KeyDependsOnLocale(t *testing.T) {
	assert.NotEqual(t, cacheKey("apple", LocaleUS), cacheKey("apple", LocaleUK))
	assert.Equal(t, cacheKey("apple", LocaleUS), cacheKey("apple", LocaleUS))
}

func TestAudio_APIErrorIsNotCached(t *testing.T) {
	var calls atomic.Int32
	g := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	})

	_, err := g.Audio(context.Background(), "apple", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")

	_, err = g.Audio(context.Background(), "apple", "")
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAudio_EmptyAudioContent(t *testing.T) {
	g := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	_, err := g.Audio(context.Background(), "apple", LocaleUS)
	assert.ErrorContains(t, err, "no audio")
}

func TestSpeakSync_PlaysCachedFile(t *testing.T) {
	g := newTestTTS(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"audioContent": base64.StdEncoding.EncodeToString([]byte("x")),
		})
	})
	var played string
	g.play = func(_ context.Context, path string) error {
		played = path
		return nil
	}

	require.NoError(t, g.SpeakSync(context.Background(), "banana", LocaleUS))
	assert.FileExists(t, played)
}

func TestNew_WithoutKeyIsNop(t *testing.T) {
	assert.IsType(t, Nop{}, New(Config{}, logger.Nop()))
	Nop{}.Speak("hello", LocaleUS)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("AIDU_GOOGLE_TTS_API_KEY", "abc")
	assert.Equal(t, "abc", ConfigFromEnv().APIKey)
}

func TestAudio_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL + "/v1/text:synthesize"
	srv.Close()

	g, err := NewGoogleTTS(Config{APIKey: "SECRET-KEY-123", Endpoint: endpoint, CacheDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)

	_, err = g.Audio(context.Background(), "apple", LocaleUS)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tts request")
	assert.NotContains(t, err.Error(), "SECRET-KEY-123")
}
