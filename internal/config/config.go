// Package config resolves go-resman settings from flags, RESMAN_* environment
// variables and an optional YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentflare-ai/go-resman/internal/jsonresume"
	"github.com/agentflare-ai/go-resman/internal/roff"
)

const (
	AppName   = "go-resman"
	EnvPrefix = "RESMAN"

	ModeRoff = "roff"
	ModeHTML = "html"
)

var (
	ErrConfigFile = errors.New("config file")
	ErrInvalid    = errors.New("invalid setting")
)

// Settings is the resolved configuration for one invocation.
type Settings struct {
	Mode         string
	Page         roff.Options
	SummaryWidth int
	Limits       jsonresume.Limits
	Verbose      bool

	// ConfigFile is the file that was read, empty when none was found.
	ConfigFile string
}

// flagKeys maps config keys to the flag names that override them. Flags
// missing from the set passed to Load are skipped.
var flagKeys = map[string]string{
	"mode":          "mode",
	"verbose":       "verbose",
	"summary.width": "width",
}

// Load reads settings. file names an explicit config file; when empty,
// go-resman.yaml is searched for in the working directory and in
// $HOME/.config/go-resman, and not finding one is not an error.
func Load(file string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if file == "" {
		file = findConfig()
	}
	if file != "" {
		v.SetConfigFile(file)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if file != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigFile, err)
		}
	}

	s := &Settings{
		Mode: strings.ToLower(strings.TrimSpace(v.GetString("mode"))),
		Page: roff.Options{
			Page:    v.GetString("page.name"),
			Section: v.GetString("page.section"),
			Source:  v.GetString("page.source"),
		},
		SummaryWidth: v.GetInt("summary.width"),
		Limits: jsonresume.Limits{
			MaxWorkItems:      v.GetInt("encode.max_work_items"),
			MaxWorkHighlights: v.GetInt("encode.max_work_highlights"),
			MaxSkillGroups:    v.GetInt("encode.max_skill_groups"),
			MaxSkillKeywords:  v.GetInt("encode.max_skill_keywords"),
		},
		Verbose:    v.GetBool("verbose"),
		ConfigFile: file,
	}
	return s, nil
}

// findConfig returns the first go-resman.yaml in the working directory or
// $HOME/.config/go-resman, or "" when there is none. Only that exact name
// matches, so the go-resman binary itself is never picked up.
func findConfig() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", AppName))
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, AppName+".yaml")
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func setDefaults(v *viper.Viper) {
	page := roff.DefaultOptions()
	lim := jsonresume.DefaultLimits()

	v.SetDefault("mode", ModeRoff)
	v.SetDefault("page.name", page.Page)
	v.SetDefault("page.section", page.Section)
	v.SetDefault("page.source", page.Source)
	v.SetDefault("summary.width", 66)
	v.SetDefault("encode.max_work_items", lim.MaxWorkItems)
	v.SetDefault("encode.max_work_highlights", lim.MaxWorkHighlights)
	v.SetDefault("encode.max_skill_groups", lim.MaxSkillGroups)
	v.SetDefault("encode.max_skill_keywords", lim.MaxSkillKeywords)
	v.SetDefault("verbose", false)
}

// ValidateRender checks the settings the root render command reads. Load
// leaves this to the caller so commands that ignore them still run.
func (s *Settings) ValidateRender() error {
	switch s.Mode {
	case ModeRoff, ModeHTML:
	default:
		return fmt.Errorf("%w: mode %q (want %s or %s)", ErrInvalid, s.Mode, ModeRoff, ModeHTML)
	}
	if strings.TrimSpace(s.Page.Page) == "" {
		return fmt.Errorf("%w: page.name is empty", ErrInvalid)
	}
	return nil
}

// ValidateSummary checks the settings the summary command reads.
func (s *Settings) ValidateSummary() error {
	if s.SummaryWidth <= 0 {
		return fmt.Errorf("%w: summary.width must be positive, got %d", ErrInvalid, s.SummaryWidth)
	}
	return nil
}
