package app

import (
	"os"
	"path/filepath"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/mitchellh/go-homedir"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/meshmodel/pkg/utils"
)

const (
	CONFIG_FILE = ".meshctl"

	ENV_SERVER   = "MESH_SERVER"
	ENV_OUTPUT   = "MESH_OUTPUT"
	ENV_MESHBASE = "MESH_MESHBASE"

	DEFAULT_SERVER = "http://localhost:8080"
)

// Config is read from .meshctl in the home directory, the user
// config directory and the current directory, in this order.
// Later settings override earlier ones, environment variables
// override all files. Variables in config files are expanded.
type Config struct {
	Server   *string `json:"server,omitempty"`
	Output   *string `json:"output,omitempty"`
	MeshBase *string `json:"meshbase,omitempty"`
}

func GetConfig(fs vfs.FileSystem) *Config {
	var cfg Config

	dir, err := homedir.Dir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	dir, err = os.UserConfigDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	MergeConfig(&cfg, ReadConfig(fs, CONFIG_FILE))

	if v := os.Getenv(ENV_SERVER); v != "" {
		cfg.Server = utils.Pointer(v)
	}
	if v := os.Getenv(ENV_OUTPUT); v != "" {
		cfg.Output = utils.Pointer(v)
	}
	if v := os.Getenv(ENV_MESHBASE); v != "" {
		cfg.MeshBase = utils.Pointer(v)
	}
	if cfg.Server == nil || *cfg.Server == "" {
		cfg.Server = utils.Pointer(DEFAULT_SERVER)
	}
	return &cfg
}

func ReadConfig(fs vfs.FileSystem, path string) *Config {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil
	}
	expanded, err := envsubst.EvalEnv(string(data))
	if err != nil {
		log.Warn("cannot expand config file {{file}}: {{error}}", "file", path, "error", err)
		return nil
	}

	var cfg Config
	err = yaml.Unmarshal([]byte(expanded), &cfg)
	if err != nil {
		log.Warn("invalid config file {{file}}: {{error}}", "file", path, "error", err)
		return nil
	}
	log.Debug("using config file {{file}}", "file", path)
	return &cfg
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.Server != nil {
		cfg.Server = add.Server
	}
	if add.Output != nil {
		cfg.Output = add.Output
	}
	if add.MeshBase != nil {
		cfg.MeshBase = add.MeshBase
	}
}
