package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const pepperLength = 32

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile string
)

// SetPepperPath selects where the pepper is persisted and forgets any pepper
// already loaded. An empty path keeps the pepper in memory only, which is fine
// for tests but makes stored hashes unverifiable after a restart.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	pepperFile = file
	pepper = ""
}

// GetPepper returns the pepper, loading or creating it on first use.
func GetPepper() string {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper
	}

	p, err := loadOrGeneratePepper(pepperFile)
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}
	pepper = p
	return pepper
}

// LoadPepper eagerly loads the pepper so a bad path fails at startup instead
// of on the first registration.
func LoadPepper() error {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	p, err := loadOrGeneratePepper(pepperFile)
	if err != nil {
		return err
	}
	pepper = p
	return nil
}

func loadOrGeneratePepper(file string) (string, error) {
	if file == "" {
		return newPepper()
	}

	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(file)
	if err == nil {
		p := strings.TrimSpace(string(raw))
		if p == "" {
			return "", errors.New("pepper file is empty: " + file)
		}
		return p, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	p, err := newPepper()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(file, []byte(p), 0o600); err != nil {
		return "", err
	}
	return p, nil
}

func newPepper() (string, error) {
	b := make([]byte, pepperLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
