package bootstrap

import "github.com/morrow-app/morrow/internal/pkg/env"

type GatewayConfig struct {
	GrpcSavingsHost string
	GrpcSavingsPort string
	HttpPort        string
}

func LoadGatewayConfig() GatewayConfig {
	cfg := GatewayConfig{
		GrpcSavingsHost: "localhost",
		GrpcSavingsPort: ":9090",
		HttpPort:        ":8080",
	}

	env.TrySetFromEnv(env.EnvGrpcSavingsHost, &cfg.GrpcSavingsHost)
	env.TrySetFromEnv(env.EnvGrpcSavingsPort, &cfg.GrpcSavingsPort)
	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)

	return cfg
}
