package database

// Supported values for Config.Driver.
const (
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds configuration for the database connection.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name (or file path for sqlite).
	Name string `mapstructure:"name" default:"receptor"`
	// Driver is the database driver (mysql, sqlite, postgres).
	Driver string `mapstructure:"driver" default:"mysql"`
	// SSLMode is passed to postgres connections.
	SSLMode string `mapstructure:"ssl_mode" default:"disable"`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// AutoMigrate creates or updates the schema on startup. When disabled the
	// existing schema is verified instead.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"true"`
}
