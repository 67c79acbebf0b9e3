package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"pixelpulse/internal/state"
)

const (
	DefaultConfigFileName = "config.toml"
	ConfigEnv             = "PIXELPULSE_CONFIG"
	DefaultBarWidth       = 24
	MinBarWidth           = 10
)

type Keymap struct {
	Quit     string `toml:"quit"`
	Focus    string `toml:"focus"`
	Up       string `toml:"up"`
	Down     string `toml:"down"`
	Toggle   string `toml:"toggle"`
	Delete   string `toml:"delete"`
	NextTab  string `toml:"next_tab"`
	PrevTab  string `toml:"prev_tab"`
	TabTasks string `toml:"tab_tasks"`
	TabNotes string `toml:"tab_notes"`
	TabMood  string `toml:"tab_mood"`
	Confirm  string `toml:"confirm"`
	Cancel   string `toml:"cancel"`
}

type Config struct {
	DefaultTab    string `toml:"default_tab"`
	ConfirmDelete bool   `toml:"confirm_delete"`
	BarWidth      int    `toml:"bar_width"`
	LogFile       string `toml:"log_file"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath picks $PIXELPULSE_CONFIG, then the user config dir, then
// the working directory.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(ConfigEnv)); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "pixelpulse", DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg.normalize(), nil
}

// Tab returns the configured starting tab.
func (c Config) Tab() state.Tab {
	if tab, ok := state.ParseTab(c.DefaultTab); ok {
		return tab
	}
	return state.TabTasks
}

func (c Config) normalize() Config {
	def := Default()
	if _, ok := state.ParseTab(c.DefaultTab); !ok {
		c.DefaultTab = def.DefaultTab
	}
	if c.BarWidth == 0 {
		c.BarWidth = def.BarWidth
	}
	if c.BarWidth < MinBarWidth {
		c.BarWidth = MinBarWidth
	}
	k, d := &c.Keys, def.Keys
	fill := func(v *string, fallback string) {
		if *v == "" {
			*v = fallback
		}
	}
	fill(&k.Quit, d.Quit)
	fill(&k.Focus, d.Focus)
	fill(&k.Up, d.Up)
	fill(&k.Down, d.Down)
	fill(&k.Toggle, d.Toggle)
	fill(&k.Delete, d.Delete)
	fill(&k.NextTab, d.NextTab)
	fill(&k.PrevTab, d.PrevTab)
	fill(&k.TabTasks, d.TabTasks)
	fill(&k.TabNotes, d.TabNotes)
	fill(&k.TabMood, d.TabMood)
	fill(&k.Confirm, d.Confirm)
	fill(&k.Cancel, d.Cancel)
	return c
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		DefaultTab: string(state.TabTasks),
		BarWidth:   DefaultBarWidth,
		Keys: Keymap{
			Quit:     "q",
			Focus:    "a",
			Up:       "k",
			Down:     "j",
			Toggle:   " ",
			Delete:   "d",
			NextTab:  "tab",
			PrevTab:  "shift+tab",
			TabTasks: "1",
			TabNotes: "2",
			TabMood:  "3",
			Confirm:  "enter",
			Cancel:   "esc",
		},
	}
}
