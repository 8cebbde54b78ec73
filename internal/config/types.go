package config

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Host            string `yaml:"host" koanf:"host"`
	Port            int    `yaml:"port" koanf:"port"`
	DataDir         string `yaml:"data_dir" koanf:"data_dir"`
	StaticDir       string `yaml:"static_dir" koanf:"static_dir"`
	BlogsDir        string `yaml:"blogs_dir" koanf:"blogs_dir"`
	SessionSecret   string `yaml:"session_secret" koanf:"session_secret"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Watch           bool   `yaml:"watch" koanf:"watch"`
	// ContactEndpoint, when set, makes the email dialog post to a remote
	// contact API instead of the local store.
	ContactEndpoint string       `yaml:"contact_endpoint" koanf:"contact_endpoint"`
	CompressLevel   int          `yaml:"compress_level" koanf:"compress_level"`
	Assets          AssetsConfig `yaml:"assets" koanf:"assets"`
	// NotifyWebhooks receive a JSON post for every stored contact message.
	NotifyWebhooks []string `yaml:"notify_webhooks,omitempty" koanf:"notify_webhooks"`
}

// AssetsConfig controls `folio minify`.
type AssetsConfig struct {
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}
