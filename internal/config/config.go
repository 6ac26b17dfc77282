package config

import (
	"os"
	"path/filepath"
)

const (
	AppName    = "AdGen"
	AppVersion = "1.0.0"
)

// Chrome headers used when fetching user-supplied product pages.
// Plenty of storefronts refuse requests without a browser-like user-agent.
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="135", "Chromium";v="135", "Not-A.Brand";v="8"`
)

// AIConfig holds the completion API settings, read once at startup.
type AIConfig struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai, required for compatible
	Model    string
}

type Config struct {
	Addr      string
	DBPath    string
	DataDir   string
	StaticDir string
	LogLevel  string
	ProxyURL  string
	AI        AIConfig
}

func Load() Config {
	addr := os.Getenv("ADGEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("ADGEN_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	path := os.Getenv("ADGEN_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "adgen.db")
	}
	staticDir := os.Getenv("ADGEN_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}
	logLevel := os.Getenv("ADGEN_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		Addr:      addr,
		DBPath:    filepath.Clean(path),
		DataDir:   filepath.Clean(dataDir),
		StaticDir: filepath.Clean(staticDir),
		LogLevel:  logLevel,
		ProxyURL:  os.Getenv("ADGEN_PROXY_URL"),
		AI:        loadAI(),
	}
}

func loadAI() AIConfig {
	provider := os.Getenv("ADGEN_AI_PROVIDER")
	if provider == "" {
		provider = "openai"
	}
	model := os.Getenv("ADGEN_AI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	apiKey := os.Getenv("ADGEN_AI_API_KEY")
	if apiKey == "" {
		if provider == "anthropic" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		} else {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		BaseURL:  os.Getenv("ADGEN_AI_BASE_URL"),
		Model:    model,
	}
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
