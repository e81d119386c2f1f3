package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port             string `envconfig:"PORT" default:"8080"`
	AWSRegion        string `envconfig:"AWS_REGION" default:"us-east-1"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT" default:""` // DynamoDB Local endpoint
	OrdersTable      string `envconfig:"ORDERS_TABLE" default:"orders"`
	ProductsTable    string `envconfig:"PRODUCTS_TABLE" default:"products"`
	ShopsTable       string `envconfig:"SHOPS_TABLE" default:"shops"`

	// Pending orders are auto-resolved ExpiryWindow after creation. The poll
	// interval is a safety net; each pending order also gets a one-shot timer
	// at its exact expiry instant.
	ExpiryWindow time.Duration `envconfig:"ORDER_EXPIRY_WINDOW" default:"40s"`
	PollInterval time.Duration `envconfig:"ORDER_POLL_INTERVAL" default:"30s"`
	ExpiryAction string        `envconfig:"ORDER_EXPIRY_ACTION" default:"cancel"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
