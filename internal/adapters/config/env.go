package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables read by LoadSettings.
const (
	EnvCacheDir         = "DEPRES_CACHE_DIR"
	EnvReadOnlyCacheDir = "DEPRES_READONLY_CACHE_DIR"
	EnvOffline          = "DEPRES_OFFLINE"
)

// Settings are the process-level options that are not part of a project file.
type Settings struct {
	CacheDir         string
	ReadOnlyCacheDir string
	Offline          bool
}

// LoadSettings reads settings from the environment, falling back to the
// given dotenv files (".env" when none are named). Variables already set in
// the environment win over file values. Missing files are skipped.
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	fileEnv := make(map[string]string)
	for _, name := range envFiles {
		values, err := godotenv.Read(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
			return Settings{}, zerr.With(err, "path", name)
		}
		maps.Copy(fileEnv, values)
	}

	lookup := func(key string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(fileEnv[key])
	}

	settings := Settings{
		CacheDir:         firstNonEmpty(lookup(EnvCacheDir), domain.DefaultCachePath()),
		ReadOnlyCacheDir: lookup(EnvReadOnlyCacheDir),
	}

	if raw := lookup(EnvOffline); raw != "" {
		offline, err := strconv.ParseBool(raw)
		if err != nil {
			err = zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
			return Settings{}, zerr.With(err, "variable", EnvOffline)
		}
		settings.Offline = offline
	}
	return settings, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
