// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// SettingsFile is the name of the optional settings file with
// overrides for the defaults below. It is looked for in the
// current directory and next to the velvetTarget binary.
const SettingsFile = "settings.yaml"

// ToolConfig holds the names (or absolute paths) of the external
// binaries that velvetTarget delegates to. Every one of them is
// invoked as an opaque subprocess; velvetTarget only builds their
// command lines and consumes their output files.
type ToolConfig struct {
	// adapter trimmer (ea-utils)
	FastqMcf string `mapstructure:"fastq-mcf"`

	// windowed quality filter, emits a singletons file
	Sickle string `mapstructure:"sickle"`

	// paired-end read joiner
	FastqJoin string `mapstructure:"fastq-join"`

	// velvet's hashing and graph stages
	Velveth string `mapstructure:"velveth"`
	Velvetg string `mapstructure:"velvetg"`

	// BLAST+ database builder and search
	MakeBlastDB string `mapstructure:"makeblastdb"`
	Blastn      string `mapstructure:"blastn"`
}

// BlastConfig is settings for the probe-vs-contig searches
type BlastConfig struct {
	// the blastn task ("blastn", "megablast", ...)
	Task string `mapstructure:"task"`

	// the expect value cutoff
	Evalue float64 `mapstructure:"evalue"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line
type Config struct {
	// external tool names/paths
	Tools ToolConfig `mapstructure:"tools"`

	// blastn settings
	Blast BlastConfig `mapstructure:"blast"`

	// minimum fraction of a target's length that its single
	// alignment segment must cover for the target to count as
	// nested within a contig
	NestedCoverage float64 `mapstructure:"nested-coverage"`

	// minimum read length kept by the quality filter
	QualityMinLength int `mapstructure:"quality-min-length"`

	// quality threshold passed to the filter
	QualityThreshold int `mapstructure:"quality-threshold"`

	// maximum percent difference allowed by the read joiner
	JoinPercMax int `mapstructure:"join-perc-max"`

	// how long any single external command may run
	ToolTimeout time.Duration `mapstructure:"tool-timeout"`

	// whether to log each external command before running it
	Verbose bool `mapstructure:"verbose"`
}

// Setup installs the defaults and reads the optional settings file.
// Called once from the root command's initializer.
func Setup() {
	viper.SetDefault("tools.fastq-mcf", "fastq-mcf")
	viper.SetDefault("tools.sickle", "sickle")
	viper.SetDefault("tools.fastq-join", "fastq-join")
	viper.SetDefault("tools.velveth", "velveth")
	viper.SetDefault("tools.velvetg", "velvetg")
	viper.SetDefault("tools.makeblastdb", "makeblastdb")
	viper.SetDefault("tools.blastn", "blastn")

	viper.SetDefault("blast.task", "blastn")
	viper.SetDefault("blast.evalue", 1e-10)

	viper.SetDefault("nested-coverage", 0.98)
	viper.SetDefault("quality-min-length", 40)
	viper.SetDefault("quality-threshold", 20)
	viper.SetDefault("join-perc-max", 8)
	viper.SetDefault("tool-timeout", 4*time.Hour)

	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if ex, err := os.Executable(); err == nil {
		viper.AddConfigPath(filepath.Dir(ex))
	}

	// the settings file is optional, defaults cover everything
	viper.ReadInConfig()
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
