// internal/settings/settings.go
package settings

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings — настройки приложения, не влияющие на симуляцию:
// окно, масштаб, каталог ассетов. Игровые параметры волн живут
// в data/waves.txt, не здесь.
type Settings struct {
	WindowTitle string  `yaml:"windowTitle"`
	WindowScale float64 `yaml:"windowScale"` // множитель размера окна к логическому разрешению
	Fullscreen  bool    `yaml:"fullscreen"`
	AssetDir    string  `yaml:"assetDir"`
	RandomSeed  int64   `yaml:"randomSeed"` // 0 — сидироваться от времени
}

// Default возвращает настройки по умолчанию.
func Default() Settings {
	return Settings{
		WindowTitle: "Top-Down Zombies",
		WindowScale: 1.0,
		Fullscreen:  false,
		AssetDir:    "data",
		RandomSeed:  0,
	}
}

// Load читает YAML-файл настроек. Любая проблема с файлом не фатальна:
// возвращаются значения по умолчанию, причина пишется в лог.
func Load(path string) Settings {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("settings %s not found, using defaults", path)
		return cfg
	}
	if err := cfg.parse(data); err != nil {
		log.Printf("settings %s: %v, using defaults", path, err)
		return Default()
	}
	return cfg
}

func (s *Settings) parse(data []byte) error {
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 1.0
	}
	if s.AssetDir == "" {
		s.AssetDir = "data"
	}
	return nil
}
