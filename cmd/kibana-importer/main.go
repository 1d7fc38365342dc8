// Imports a Kibana export.json file into Kibana via its REST API, as created
// by the 'Export Everything' button. Aims to behave like the 'Import' button
// next to it.
package main

import (
	"context"
	"os"

	"github.com/nh2/kibana-importer/config"
	"github.com/nh2/kibana-importer/service"
	"github.com/nh2/kibana-importer/utils"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultKibanaBaseURL = "http://localhost:5601"

func main() {
	configFile := pflag.String("config", "", "yaml config file with kibana endpoints and import tasks")
	jsonFile := pflag.String("json", "", "the kibana json export file to import (default stdin)")
	kibanaURL := pflag.String("kibana-url", defaultKibanaBaseURL, "kibana base url")
	wait := pflag.Bool("wait", false, "wait indefinitely for kibana to come up")
	waitStrategy := pflag.String("wait-strategy", string(config.WaitStrategyHealth), "readiness strategy, health or port")
	remapIndex := pflag.Bool("remap-index", false, "rewrite the export's default index to the target's current one")
	parallelism := pflag.Uint("parallelism", 0, "max concurrent uploads, 0 runs every record at once")
	verbose := pflag.BoolP("verbose", "v", false, "increase output verbosity")
	pflag.Parse()

	var cfg config.Config
	if *configFile != "" {
		viper.SetConfigFile(*configFile)
		viper.SetConfigType("yaml")

		if err := viper.ReadInConfig(); err != nil {
			utils.GetLogger(context.Background()).Errorf("unable to read config file %+v", err)
			os.Exit(1)
		}
		if err := viper.Unmarshal(&cfg); err != nil {
			utils.GetLogger(context.Background()).Errorf("unable to decode config file %+v", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Config{
			KibanaConfigs: map[string]*config.KibanaConfig{
				"default": {Address: *kibanaURL},
			},
			Tasks: []*config.TaskCfg{
				{
					Name:         "import",
					Kibana:       "default",
					ExportFile:   *jsonFile,
					TaskAction:   config.TaskActionImport,
					Wait:         *wait,
					WaitStrategy: config.WaitStrategy(*waitStrategy),
					RemapIndex:   *remapIndex,
					Parallelism:  *parallelism,
				},
			},
		}
	}

	if *verbose {
		cfg.Level = "debug"
	}
	utils.InitLogger(&cfg)

	ctx := context.Background()
	defer utils.Recovery(ctx)

	taskMgr, err := service.NewTaskMgr(&cfg)
	if err != nil {
		utils.GetLogger(ctx).Errorf("create task manager %+v", err)
		os.Exit(1)
	}
	if err := taskMgr.Run(ctx); err != nil {
		utils.GetLogger(ctx).Errorf("run task manager %+v", err)
		os.Exit(1)
	}
}
