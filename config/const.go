package config

const (
	FlagConfigPath   = "config-path"
	FlagConfigDbPass = "db-pass"

	DBDialectMysql   = "mysql"
	DBDialectSqlite3 = "sqlite3"

	KeyTypeLocalPrivateKey = "local_private_key"
	KeyTypeAWSPrivateKey   = "aws_private_key"

	EnvVarConfigFilePath = "CONFIG_FILE_PATH"
	EnvVarDBPass         = "DB_PASSWORD"
)
