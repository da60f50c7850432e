package main

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/chrono/storage"
	"gopkg.in/yaml.v3"
)

// config selects the storage a schedule lives on. It can be read from a YAML
// file; command line flags override it.
type config struct {
	Source    string `yaml:"source"`
	URI       string `yaml:"uri"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access-key"`
	SecretKey string `yaml:"secret-key"`
}

func defaultConfig() config {
	return config{Source: "disk", URI: "."}
}

func loadConfig(path string, into *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "can not read config")
	}
	if err := yaml.Unmarshal(data, into); err != nil {
		return errors.Wrapf(err, "can not parse config %s", path)
	}
	return nil
}

func (c config) open(ctx context.Context) (storage.System, error) {
	switch c.Source {
	case "disk":
		return storage.NewDiskStorage(c.URI), nil
	case "memory":
		return storage.NewMemoryStorage(), nil
	case "s3":
		return storage.NewS3StorageFromOptions(ctx, storage.S3Options{
			Bucket:    c.Bucket,
			Region:    c.Region,
			Endpoint:  c.Endpoint,
			AccessKey: c.AccessKey,
			SecretKey: c.SecretKey,
		})
	}
	return nil, errors.Newf("unsupported storage system: %s", c.Source)
}
