package config

import (
	"context"
	"fmt"
	"os"

	"github.com/larriantoniy/ig_user_client/internal/adapters/ig"
	"github.com/larriantoniy/ig_user_client/internal/ports"
)

type JSONAccountConfigRepo struct {
	baseDir string // "./accounts"
}

func NewJSONAccountConfigRepo(baseDir string) *JSONAccountConfigRepo {
	return &JSONAccountConfigRepo{baseDir: baseDir}
}

// ListAccounts returns every subdirectory of baseDir; each is one account.
func (r *JSONAccountConfigRepo) ListAccounts(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	return out, nil
}

func (r *JSONAccountConfigRepo) GetAccountConfig(ctx context.Context, name string) (*ports.AccountConfig, error) {
	raw, err := ig.LoadRawAccountConfig(r.baseDir, name)
	if err != nil {
		return nil, err
	}
	if raw.Username == "" || raw.Password == "" {
		return nil, fmt.Errorf("account %s: username and password required", name)
	}
	return raw.ToAccountConfig()
}
