package configs

// Redis configures the live event counters.
type Redis struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// KeyPrefix namespaces every counter key.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"mesa:"`
}
