package configs

// Profile configures the SQLite file backing user profiles.
type Profile struct {
	Path string `env:"PATH" envDefault:"adsim.db"`
}
