package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath задаёт путь к config.yaml через окружение.
const EnvConfigPath = "PHOENIX_CONFIG"

// PathFinder определяет стратегию поиска пути к config.yaml.
//
// Можно подменить в тестах.
type PathFinder interface {
	FindConfigPath() string
}

// DefaultPathFinder реализует стандартную стратегию поиска config.yaml.
//
// Порядок поиска:
//  1. Флаг --config (если указан)
//  2. Переменная окружения PHOENIX_CONFIG
//  3. Текущая директория (./config.yaml)
//  4. Директория бинарника
//
// Флаг и переменная окружения возвращаются как есть, даже если файла
// нет: Load сообщит об ошибке. Неявные места поиска возвращаются только
// для существующих файлов. Если файл нигде не найден, возвращается
// пустая строка и используется конфигурация по умолчанию.
type DefaultPathFinder struct {
	// ConfigFlag - значение флага --config, если указан
	ConfigFlag string
}

// FindConfigPath находит путь к config.yaml.
func (f *DefaultPathFinder) FindConfigPath() string {
	if f.ConfigFlag != "" {
		return resolveAbsPath(f.ConfigFlag)
	}

	if env := os.Getenv(EnvConfigPath); env != "" {
		return resolveAbsPath(env)
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		return resolveAbsPath("config.yaml")
	}

	if execPath, err := os.Executable(); err == nil {
		cfgPath := filepath.Join(filepath.Dir(execPath), "config.yaml")
		if _, err := os.Stat(cfgPath); err == nil {
			return cfgPath
		}
	}

	return ""
}

// Initialize находит и загружает конфигурацию.
//
// Возвращает конфиг и путь, откуда он был загружен ("" для дефолтов).
func Initialize(finder PathFinder) (*AppConfig, string, error) {
	cfgPath := finder.FindConfigPath()

	cfg, err := Load(cfgPath)
	if err != nil {
		return nil, cfgPath, err
	}

	return cfg, cfgPath, nil
}

func resolveAbsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
