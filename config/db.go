package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bio-registry/part-hub/db"
)

// InitDBWithConfig opens the configured database and optionally migrates
// the registry tables. Panics on any failure since the process cannot run
// without its store.
func InitDBWithConfig(cfg *DBConfig, needMigrate bool) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.Dialect {
	case DBDialectMysql:
		dbPath := fmt.Sprintf("%s:%s@%s", cfg.Username, getDBPass(cfg), cfg.Url)
		dialector = mysql.Open(dbPath)
	case DBDialectSqlite3:
		dialector = sqlite.Open(cfg.Url)
	default:
		panic(fmt.Sprintf("unexpected DB dialect %s", cfg.Dialect))
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic(fmt.Sprintf("open db error, err=%s", err.Error()))
	}
	dbConfig, err := gormDB.DB()
	if err != nil {
		panic(err)
	}
	dbConfig.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConfig.SetMaxOpenConns(cfg.MaxOpenConns)

	if needMigrate {
		db.InitTables(gormDB)
	}
	return gormDB
}

func getDBPass(cfg *DBConfig) string {
	if pass := os.Getenv(EnvVarDBPass); pass != "" {
		return pass
	}
	if cfg.KeyType == KeyTypeAWSPrivateKey {
		result, err := GetSecret(cfg.AWSSecretName, cfg.AWSRegion)
		if err != nil {
			panic(err)
		}
		type DBPass struct {
			DbPass string `json:"db_pass"`
		}
		var dbPassword DBPass
		if err = json.Unmarshal([]byte(result), &dbPassword); err != nil {
			panic(err)
		}
		return dbPassword.DbPass
	}
	return cfg.Password
}
