package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"udpsyslog/internal/global"
)

// Loads JSON config from file.
// A missing file is not an error, callers fall back to built-in defaults.
func LoadConfig(path string) (cfg global.JSONConfig, err error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
		} else {
			err = fmt.Errorf("failed to read config file: %v", err)
		}
		return
	}

	err = json.Unmarshal(configFile, &cfg)
	if err != nil {
		err = fmt.Errorf("invalid config syntax in '%s': %v", path, err)
		return
	}

	return
}

// Writes JSON config to file
func WriteConfig(path string, cfg global.JSONConfig) (err error) {
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		err = fmt.Errorf("failed to serialize config: %v", err)
		return
	}
	configBytes = append(configBytes, '\n')

	err = os.WriteFile(path, configBytes, 0644)
	if err != nil {
		err = fmt.Errorf("failed to write config file: %v", err)
		return
	}
	return
}
