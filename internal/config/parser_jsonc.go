package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/rbright/mediakey/internal/ipc"
	"github.com/tailscale/hujson"
)

type jsoncConfig struct {
	Player   *jsoncPlayer             `json:"player"`
	Fallback map[string]jsoncFallback `json:"fallback"`
}

type jsoncPlayer struct {
	Process   *string `json:"process"`
	Socket    *string `json:"socket"`
	TimeoutMS *int    `json:"timeout_ms"`
}

type jsoncFallback struct {
	Kind     *string `json:"kind"`
	KeyCode  *int    `json:"key_code"`
	Shortcut *string `json:"shortcut"`
	Command  *string `json:"command"`
}

func parseJSONC(content string, base Config) (Config, []Warning, error) {
	// Standardize blanks out comments and trailing commas in place, so byte
	// offsets in decode errors still point into the original file.
	normalized, err := hujson.Standardize([]byte(content))
	if err != nil {
		return Config{}, nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(normalized))
	decoder.DisallowUnknownFields()

	var payload jsoncConfig
	if err := decoder.Decode(&payload); err != nil {
		return Config{}, nil, wrapJSONDecodeError(content, err)
	}

	cfg := base
	cfg.Fallback = maps.Clone(base.Fallback)
	if cfg.Fallback == nil {
		cfg.Fallback = make(map[ipc.Command]FallbackAction)
	}
	if err := payload.applyTo(&cfg); err != nil {
		return Config{}, nil, err
	}

	warnings, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, warnings, nil
}

func (payload jsoncConfig) applyTo(cfg *Config) error {
	if payload.Player != nil {
		if payload.Player.Process != nil {
			cfg.Player.Process = strings.TrimSpace(*payload.Player.Process)
		}
		if payload.Player.Socket != nil {
			cfg.Player.Socket = strings.TrimSpace(*payload.Player.Socket)
		}
		if payload.Player.TimeoutMS != nil {
			cfg.Player.TimeoutMS = *payload.Player.TimeoutMS
		}
	}

	for name, entry := range payload.Fallback {
		cmd, err := ipc.ParseCommand(name)
		if err != nil {
			return fmt.Errorf("fallback: %w", err)
		}

		action := cfg.Fallback[cmd]
		if entry.Kind != nil {
			kind := FallbackKind(strings.ToLower(strings.TrimSpace(*entry.Kind)))
			if kind != action.Kind {
				// -1 marks key_code as unset so Validate can reject it.
				action = FallbackAction{Kind: kind, KeyCode: -1}
			}
		}
		if entry.KeyCode != nil {
			action.KeyCode = *entry.KeyCode
		}
		if entry.Shortcut != nil {
			action.Shortcut = strings.TrimSpace(*entry.Shortcut)
		}
		if entry.Command != nil {
			raw := *entry.Command
			argv, err := parseArgv(raw)
			if err != nil {
				return fmt.Errorf("invalid fallback.%s.command: %w", cmd, err)
			}
			action.Command = CommandConfig{Raw: raw, Argv: argv}
		}
		cfg.Fallback[cmd] = action
	}

	return nil
}

func wrapJSONDecodeError(content string, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(content, syntaxErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(content, typeErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	return err
}

func offsetToLineCol(content string, offset int64) (int, int) {
	if offset <= 0 {
		return 1, 1
	}

	limit := min(int(offset), len(content))
	line, col := 1, 1
	for i := 0; i < limit-1; i++ {
		if content[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
