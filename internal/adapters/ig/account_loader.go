package ig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AccountConfigFile is the per-account file name inside <baseDir>/<account>/.
const AccountConfigFile = "account.json"

func LoadRawAccountConfig(baseDir, accountName string) (*RawAccountConfig, error) {
	path := filepath.Join(baseDir, accountName, AccountConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg RawAccountConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	// имя аккаунта = имя директории, если в json не задано
	if cfg.Name == "" {
		cfg.Name = accountName
	}
	return &cfg, nil
}
