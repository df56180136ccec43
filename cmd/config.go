package cmd

// Config holds the process configuration, populated from the environment.
type Config struct {
	HTTPPort string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LookupBaseURL    string
	LookupTimeoutSec int64
	LookupRetryMax   int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	ProcessUserIDs  []int64
	ProcessSchedule string
}
