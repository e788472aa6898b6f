package config

// Config is the top-level kysno configuration, corresponding to .kysno.yml.
type Config struct {
	Port            int      `yaml:"port" koanf:"port"`
	BookingURL      string   `yaml:"booking_url" koanf:"booking_url"`
	ScrollThreshold int      `yaml:"scroll_threshold" koanf:"scroll_threshold"`
	ContentFile     string   `yaml:"content_file,omitempty" koanf:"content_file"`
	OutputDir       string   `yaml:"output_dir" koanf:"output_dir"`
	PublicDir       string   `yaml:"public_dir" koanf:"public_dir"`
	Include         []string `yaml:"include" koanf:"include"`
	Exclude         []string `yaml:"exclude" koanf:"exclude"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
