package testioc

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

// loadConfig 从当前目录往上找 config/local.yaml
func loadConfig() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		path := filepath.Join(dir, "config", "local.yaml")
		content, err := os.ReadFile(path)
		if err == nil {
			return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
		}
		if !os.IsNotExist(err) {
			return err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return os.ErrNotExist
		}
		dir = parent
	}
}
