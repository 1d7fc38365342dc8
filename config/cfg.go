package config

type TaskAction string

const (
	TaskActionImport TaskAction = "import"
)

type WaitStrategy string

const (
	WaitStrategyHealth WaitStrategy = "health"
	WaitStrategyPort   WaitStrategy = "port"
)

type TaskCfg struct {
	Name         string       `mapstructure:"name"`
	Kibana       string       `mapstructure:"kibana"`
	ExportFile   string       `mapstructure:"export_file"`
	TaskAction   TaskAction   `mapstructure:"action"`
	Wait         bool         `mapstructure:"wait"`
	WaitStrategy WaitStrategy `mapstructure:"wait_strategy"`
	RemapIndex   bool         `mapstructure:"remap_index"`
	Parallelism  uint         `mapstructure:"parallelism"`
}

type KibanaConfig struct {
	Address  string `mapstructure:"address"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

type Config struct {
	KibanaConfigs map[string]*KibanaConfig `mapstructure:"kibanas"`
	Tasks         []*TaskCfg               `mapstructure:"tasks"`
	Level         string                   `mapstructure:"level"`
}
