// internal/config/wave_config.go
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
)

// WaveConfig — базовые параметры волн, загружаемые один раз при старте.
// От них WaveSystem выводит параметры каждой конкретной волны.
type WaveConfig struct {
	MaxZombies    int     // верхняя граница одновременных зомби из конфига
	ZombieSpeed   float64 // базовая скорость зомби, px/s
	SpawnInterval float64 // базовый интервал спавна, секунды
}

// DefaultWaveConfig возвращает значения по умолчанию.
func DefaultWaveConfig() WaveConfig {
	return WaveConfig{
		MaxZombies:    20,
		ZombieSpeed:   90.0,
		SpawnInterval: 1.0,
	}
}

// LoadWaveConfig читает текстовый конфиг формата "ключ = значение".
// Пустые строки и строки, начинающиеся с '#', пропускаются. Неизвестные
// ключи игнорируются. Отсутствующий файл или нечитаемая строка оставляют
// значение по умолчанию — конфиг не бывает фатальной ошибкой.
func LoadWaveConfig(path string) WaveConfig {
	cfg := DefaultWaveConfig()

	f, err := os.Open(path)
	if err != nil {
		log.Printf("wave config %s not found, using defaults", path)
		return cfg
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[1] != "=" {
			continue
		}
		key, value := fields[0], fields[2]
		switch key {
		case "maxZombies":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.MaxZombies = v
			}
		case "zombieSpeed":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				cfg.ZombieSpeed = v
			}
		case "spawnInterval":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				cfg.SpawnInterval = v
			}
		}
	}
	return cfg
}
