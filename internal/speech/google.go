package speech

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/aidu/english/internal/logger"
)

const defaultEndpoint = "https://texttospeech.googleapis.com/v1/text:synthesize"

// ErrNoPlayer is returned when no audio player is installed.
var ErrNoPlayer = errors.New("no audio player found")

// Config configures GoogleTTS.
type Config struct {
	APIKey   string
	Endpoint string // Default: the public synthesize endpoint.
	CacheDir string // Default: <user cache dir>/aidu/tts.
	Timeout  time.Duration
}

// ConfigFromEnv reads AIDU_GOOGLE_TTS_API_KEY.
func ConfigFromEnv() Config {
	return Config{APIKey: os.Getenv("AIDU_GOOGLE_TTS_API_KEY")}
}

// player is an installed command line audio player.
type player struct {
	name string
	args []string
}

var players = []player{
	{name: "afplay"},
	{name: "mpg123", args: []string{"-q"}},
	{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{name: "mpv", args: []string{"--no-video", "--really-quiet"}},
}

// GoogleTTS synthesizes mp3 audio with the Google Cloud Text-to-Speech REST
// API, caches it on disk and plays it with a local player.
type GoogleTTS struct {
	cfg    Config
	client *http.Client
	log    *logger.Logger

	mu sync.Mutex

	// play is replaced in tests.
	play func(ctx context.Context, path string) error
}

// New returns a GoogleTTS when cfg carries an API key and Nop otherwise.
func New(cfg Config, log *logger.Logger) Speaker {
	if cfg.APIKey == "" {
		return Nop{}
	}
	g, err := NewGoogleTTS(cfg, log)
	if err != nil {
		log.Warn("speech disabled", "error", err)
		return Nop{}
	}
	return g
}

// NewGoogleTTS builds a GoogleTTS and creates its cache directory.
func NewGoogleTTS(cfg Config, log *logger.Logger) (*GoogleTTS, error) {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		cfg.CacheDir = filepath.Join(base, "aidu", "tts")
	}
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tts cache dir: %w", err)
	}
	g := &GoogleTTS{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
	g.play = playFile
	return g, nil
}

// Speak synthesizes and plays text in the background.
func (g *GoogleTTS) Speak(text, locale string) {
	if text == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := g.SpeakSync(ctx, text, locale); err != nil {
			g.log.Warn("speech failed", "text", text, "locale", locale, "error", err)
		}
	}()
}

// SpeakSync synthesizes text (or reuses the cached audio) and blocks until
// playback ends.
func (g *GoogleTTS) SpeakSync(ctx context.Context, text, locale string) error {
	path, err := g.Audio(ctx, text, locale)
	if err != nil {
		return err
	}
	return g.play(ctx, path)
}

// Audio returns the path of the cached mp3 for text, calling the API on a
// cache miss. Failed calls are not cached.
func (g *GoogleTTS) Audio(ctx context.Context, text, locale string) (string, error) {
	if locale == "" {
		locale = LocaleUS
	}
	path := filepath.Join(g.cfg.CacheDir, cacheKey(text, locale)+".mp3")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	audio, err := g.synthesize(ctx, text, locale)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("write tts cache: %w", err)
	}
	return path, nil
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string  `json:"audioEncoding"`
		SpeakingRate  float64 `json:"speakingRate"`
	} `json:"audioConfig"`
}

func (g *GoogleTTS) synthesize(ctx context.Context, text, locale string) ([]byte, error) {
	var body synthesizeRequest
	body.Input.Text = text
	body.Voice.LanguageCode = locale
	body.AudioConfig.AudioEncoding = "MP3"
	body.AudioConfig.SpeakingRate = SpeakingRate

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal tts request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The key stays out of the URL, which net/http quotes in transport errors.
	req.Header.Set("X-Goog-Api-Key", g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts api returned %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse tts response: %w", err)
	}
	if result.AudioContent == "" {
		return nil, errors.New("tts response has no audio")
	}
	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode tts audio: %w", err)
	}
	return audio, nil
}

func cacheKey(text, locale string) string {
	h := sha256.Sum256([]byte(locale + ":" + text))
	return hex.EncodeToString(h[:16])
}

func playFile(ctx context.Context, path string) error {
	for _, p := range players {
		bin, err := exec.LookPath(p.name)
		if err != nil {
			continue
		}
		args := append(append([]string{}, p.args...), path)
		if err := exec.CommandContext(ctx, bin, args...).Run(); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
		return nil
	}
	return ErrNoPlayer
}
