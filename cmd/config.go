package cmd

type Config struct {
	HTTPPort             string
	StorageDriver        string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	DBCreateIfMissing    bool
	AppName              string
	AppEnableTranslation bool
	PageDefaultSize      int
	PageMaxSize          int
	LogLevel             string
	StatsSchedule        string
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)
