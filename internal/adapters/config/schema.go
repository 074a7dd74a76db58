package config

// Configfile represents the structure of the config.yaml configuration file.
type Configfile struct {
	StoreDir    string      `yaml:"store_dir"`
	Extension   string      `yaml:"extension"`
	SessionFile string      `yaml:"session_file"`
	LogFormat   string      `yaml:"log_format"`
	Autosave    AutosaveDTO `yaml:"autosave"`
}

// AutosaveDTO represents the autosave section of the configuration.
type AutosaveDTO struct {
	Debounce string `yaml:"debounce"`
}
