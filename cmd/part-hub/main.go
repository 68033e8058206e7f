package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bio-registry/part-hub/cache"
	"github.com/bio-registry/part-hub/config"
	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/logging"
	"github.com/bio-registry/part-hub/metrics"
	"github.com/bio-registry/part-hub/monitor"
	"github.com/bio-registry/part-hub/restapi"
	"github.com/bio-registry/part-hub/service"
)

func initFlags() {
	flag.String(config.FlagConfigPath, "", "config file path")
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	err := viper.BindPFlags(pflag.CommandLine)
	if err != nil {
		panic(err)
	}
}

func printUsage() {
	fmt.Print("usage: ./part-hub --config-path configFile\n")
}

func main() {
	initFlags()
	configFilePath := viper.GetString(config.FlagConfigPath)
	if configFilePath == "" {
		configFilePath = os.Getenv(config.EnvVarConfigFilePath)
	}
	if configFilePath == "" {
		printUsage()
		return
	}
	cfg := config.ParseConfigFromFile(configFilePath)
	if cfg == nil {
		panic("failed to get configuration")
	}
	cfg.Validate()
	logging.InitLogger(&cfg.LogConfig)

	database := config.InitDBWithConfig(&cfg.DBConfig, true)
	dao := db.NewRegistrySvcDB(database)

	localCache, err := cache.NewLocalCache(cfg.CacheConfig.GetCacheSize())
	if err != nil {
		panic(err)
	}

	auth := service.NewAuthorization(dao)
	resolver := service.NewFieldResolver(dao)
	policy := service.NewTypePolicy()
	service.BulkSvc = service.NewBulkImportService(dao, resolver, policy, auth, &cfg.ServerConfig)
	service.EntrySvc = service.NewEntryService(dao, auth, localCache)

	if cfg.ServerConfig.MetricsAddress != "" {
		metrics.NewMetrics(cfg.ServerConfig.MetricsAddress).Start()
		monitor.NewMonitor(dao).StartLoop()
	}

	restapi.NewServer(&cfg.ServerConfig).Start()
}
