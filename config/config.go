package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bio-registry/part-hub/cache"
)

type Config struct {
	LogConfig    LogConfig    `json:"log_config"`
	DBConfig     DBConfig     `json:"db_config"`
	ServerConfig ServerConfig `json:"server_config"`
	CacheConfig  CacheConfig  `json:"cache_config"`
}

type ServerConfig struct {
	Host             string `json:"host"`
	Port             int    `json:"port"`
	MetricsAddress   string `json:"metrics_address"`    // empty disables the metrics server
	PartNumberPrefix string `json:"part_number_prefix"` // prefix of generated part numbers, e.g. "JBEI"
}

func (cfg *ServerConfig) Validate() {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		panic(fmt.Sprintf("port %d is invalid", cfg.Port))
	}
	if cfg.PartNumberPrefix == "" {
		panic("part_number_prefix should not be empty")
	}
}

type CacheConfig struct {
	CacheType string `json:"cache_type"`
	CacheSize uint64 `json:"cache_size"`
}

func (c *CacheConfig) GetCacheSize() uint64 {
	if c.CacheSize != 0 {
		return c.CacheSize
	}
	return cache.DefaultCacheSize
}

type DBConfig struct {
	Dialect       string `json:"dialect"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Url           string `json:"url"`
	MaxIdleConns  int    `json:"max_idle_conns"`
	MaxOpenConns  int    `json:"max_open_conns"`
	KeyType       string `json:"key_type"`
	AWSRegion     string `json:"aws_region"`
	AWSSecretName string `json:"aws_secret_name"`
}

func (cfg *DBConfig) Validate() {
	if cfg.Dialect != DBDialectMysql && cfg.Dialect != DBDialectSqlite3 {
		panic(fmt.Sprintf("only %s and %s supported", DBDialectMysql, DBDialectSqlite3))
	}
	if cfg.Dialect == DBDialectMysql && (cfg.Username == "" || cfg.Url == "") {
		panic("db config is not correct, missing username and/or url")
	}
	if cfg.MaxIdleConns == 0 || cfg.MaxOpenConns == 0 {
		panic("db connections is not correct")
	}
}

type LogConfig struct {
	Level                        string `json:"level"`
	Filename                     string `json:"filename"`
	MaxFileSizeInMB              int    `json:"max_file_size_in_mb"`
	MaxBackupsOfLogFiles         int    `json:"max_backups_of_log_files"`
	MaxAgeToRetainLogFilesInDays int    `json:"max_age_to_retain_log_files_in_days"`
	UseConsoleLogger             bool   `json:"use_console_logger"`
	UseFileLogger                bool   `json:"use_file_logger"`
	Compress                     bool   `json:"compress"`
}

func (cfg *LogConfig) Validate() {
	if cfg.UseFileLogger {
		if cfg.Filename == "" {
			panic("filename should not be empty if use file logger")
		}
		if cfg.MaxFileSizeInMB <= 0 {
			panic("max_file_size_in_mb should be larger than 0 if use file logger")
		}
		if cfg.MaxBackupsOfLogFiles <= 0 {
			panic("max_backups_off_log_files should be larger than 0 if use file logger")
		}
	}
}

func (cfg *Config) Validate() {
	cfg.LogConfig.Validate()
	cfg.DBConfig.Validate()
	cfg.ServerConfig.Validate()
}

func ParseConfigFromJson(content string) *Config {
	var config Config
	if err := json.Unmarshal([]byte(content), &config); err != nil {
		panic(err)
	}
	return &config
}

func ParseConfigFromFile(filePath string) *Config {
	bz, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}

	var config Config
	if err := json.Unmarshal(bz, &config); err != nil {
		panic(err)
	}
	return &config
}
