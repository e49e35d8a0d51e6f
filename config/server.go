package config

const DefaultServerAddr = ":8080"

type ServerCfg struct {
	Addr string `yaml:"addr"`
}
