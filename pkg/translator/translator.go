package translator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder string
	// SupportedLanguages restricts which <lang>.toml files are loaded.
	// Empty loads every file in the folder.
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator builds the global bundle from the toml files found in
// cfg.TranslationFolder. A file that fails to parse is skipped with a
// warning so one broken locale does not take down the others.
func InitTranslator(cfg Config) error {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		return fmt.Errorf("list translation folder %s: %w", cfg.TranslationFolder, err)
	}

	supported := make(map[string]struct{}, len(cfg.SupportedLanguages))
	for _, lang := range cfg.SupportedLanguages {
		supported[lang] = struct{}{}
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}

		lang := strings.TrimSuffix(entry.Name(), ".toml")
		if _, ok := supported[lang]; len(supported) > 0 && !ok {
			zap.L().Debug("skipping unsupported translation file", zap.String("file", entry.Name()))
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, entry.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}

	return nil
}
