package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит параметры запуска мира
type Config struct {
	// Seed - мастер-зерно генератора. 0 означает "взять от времени".
	Seed int64

	// Размеры карты (по умолчанию 80x48, как окно карты в раскладке экрана)
	MapWidth  int
	MapHeight int

	// Параметры генерации комнат
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int

	// SpawnAttempts - сколько случайных точек пробуем в комнате, прежде чем сдаться.
	SpawnAttempts int
	// LightWalls - подсвечивать ли стены, ограничивающие поле зрения.
	LightWalls bool
	// PlayerAwareness - радиус обзора игрока.
	PlayerAwareness int

	Port      string
	LogLevel  string
	LogFormat string
}

// Default возвращает конфиг по умолчанию (случайный сид)
func Default() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		MapWidth:        80,
		MapHeight:       48,
		MaxRooms:        13,
		RoomMinSize:     7,
		RoomMaxSize:     13,
		SpawnAttempts:   100,
		LightWalls:      true,
		PlayerAwareness: 15,
		Port:            "8080",
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load читает .env (если есть) и переменные окружения RPG_*.
func Load() (Config, error) {
	// Отсутствие .env - нормальная ситуация
	_ = godotenv.Load()

	def := Default()
	cfg := Config{
		Seed:            getEnvAsInt64OrDefault("RPG_SEED", 0),
		MapWidth:        getEnvAsIntOrDefault("RPG_MAP_WIDTH", def.MapWidth),
		MapHeight:       getEnvAsIntOrDefault("RPG_MAP_HEIGHT", def.MapHeight),
		MaxRooms:        getEnvAsIntOrDefault("RPG_MAX_ROOMS", def.MaxRooms),
		RoomMinSize:     getEnvAsIntOrDefault("RPG_ROOM_MIN_SIZE", def.RoomMinSize),
		RoomMaxSize:     getEnvAsIntOrDefault("RPG_ROOM_MAX_SIZE", def.RoomMaxSize),
		SpawnAttempts:   getEnvAsIntOrDefault("RPG_SPAWN_ATTEMPTS", def.SpawnAttempts),
		LightWalls:      getEnvAsBoolOrDefault("RPG_LIGHT_WALLS", def.LightWalls),
		PlayerAwareness: getEnvAsIntOrDefault("RPG_PLAYER_AWARENESS", def.PlayerAwareness),
		Port:            getEnvOrDefault("RPG_PORT", def.Port),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", def.LogLevel),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", def.LogFormat),
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет, что из этих параметров вообще можно построить уровень.
func (c Config) Validate() error {
	var errs []error
	if c.MapWidth < 10 || c.MapHeight < 10 {
		errs = append(errs, fmt.Errorf("map %dx%d is smaller than 10x10", c.MapWidth, c.MapHeight))
	}
	if c.RoomMinSize < 3 {
		errs = append(errs, fmt.Errorf("room min size %d is below 3", c.RoomMinSize))
	}
	if c.RoomMaxSize < c.RoomMinSize {
		errs = append(errs, fmt.Errorf("room max size %d is below min size %d", c.RoomMaxSize, c.RoomMinSize))
	}
	if c.MaxRooms < 1 {
		errs = append(errs, fmt.Errorf("max rooms %d must be positive", c.MaxRooms))
	}
	// Комната вместе с рамкой должна помещаться внутрь внешней стены карты
	if limit := min(c.MapWidth, c.MapHeight) - 2; c.RoomMinSize > limit {
		errs = append(errs, fmt.Errorf("room min size %d does not fit a %dx%d map (max %d)", c.RoomMinSize, c.MapWidth, c.MapHeight, limit))
	}
	if c.SpawnAttempts < 1 {
		errs = append(errs, errors.New("spawn attempts must be positive"))
	}
	if c.PlayerAwareness < 0 {
		errs = append(errs, errors.New("player awareness must not be negative"))
	}
	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
