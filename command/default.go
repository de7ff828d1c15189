package command

const (
	JSONOutputFlag = "json"
	ConfigFlag     = "config"
	LogLevelFlag   = "log-level"
	JSONLogFlag    = "json-log"
	BackendFlag    = "backend"
	ForkFlag       = "fork"
	GasLimitFlag   = "gas-limit"
	WorkersFlag    = "workers"
)
