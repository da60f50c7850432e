package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const usage = `usage: chrono [flags] <command> [args]

commands:
  relate A B                compare two instant intervals
  stream INTERVAL STEP      walk a date, clock or instant interval by STEP
  quantize SPAN QUANTUM     split a clock or instant span into QUANTUM pieces
  schedule add NAME INTERVAL
  schedule list
  schedule rm ID
  schedule gaps
  schedule coverage
  schedule history
  schedule asof REV
  schedule at TIME

flags:
`

func main() {
	cfg := defaultConfig()

	configPath := flag.StringP("config", "c", "", "YAML file with storage settings")
	source := flag.StringP("source", "s", cfg.Source, "The source to work against (disk, memory, s3)")
	uri := flag.StringP("uri", "u", cfg.URI, "The uri to the source")
	bucket := flag.String("bucket", "", "S3 bucket")
	region := flag.String("region", "", "S3 region")
	endpoint := flag.String("endpoint", "", "S3 endpoint, for S3 compatible stores")
	verbose := flag.BoolP("verbose", "v", false, "Log debug output")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			log.WithError(err).Fatal("can not load config")
		}
	}
	// flags win over the config file only when given explicitly
	override := func(name string, dst *string, value string) {
		if *configPath == "" || flag.CommandLine.Changed(name) {
			*dst = value
		}
	}
	override("source", &cfg.Source, *source)
	override("uri", &cfg.URI, *uri)
	override("bucket", &cfg.Bucket, *bucket)
	override("region", &cfg.Region, *region)
	override("endpoint", &cfg.Endpoint, *endpoint)
	log.WithField("source", cfg.Source).WithField("uri", cfg.URI).Debug("storage")

	app := &app{out: os.Stdout, cfg: cfg, log: log}
	if err := app.run(context.Background(), flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
