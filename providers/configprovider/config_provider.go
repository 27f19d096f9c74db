package configprovider

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"ops360/providers"
)

// Fixed-tenant defaults. The org and requester are injected configuration
// rather than literals so a multi-tenant mode is a config change.
const (
	defaultOrgID          = "demo_org"
	defaultRequesterEmail = "admin@demo.local"
)

type EnvConfigProvider struct {
	dbUser         string
	dbPassword     string
	dbHost         string
	dbPort         string
	dbName         string
	serverPort     string
	orgID          string
	requesterEmail string
	redisAddr      string
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.dbUser = os.Getenv("DB_USER")
	e.dbPassword = os.Getenv("DB_PASSWORD")
	e.dbHost = os.Getenv("DB_HOST")
	e.dbPort = os.Getenv("DB_PORT")
	e.dbName = os.Getenv("DB_NAME")
	e.serverPort = os.Getenv("SERVER_PORT")
	e.redisAddr = os.Getenv("REDIS_ADDR")

	e.orgID = os.Getenv("ORG_ID")
	if e.orgID == "" {
		e.orgID = defaultOrgID
	}
	e.requesterEmail = os.Getenv("REQUESTER_EMAIL")
	if e.requesterEmail == "" {
		e.requesterEmail = defaultRequesterEmail
	}
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		e.dbUser, e.dbPassword, e.dbHost, e.dbPort, e.dbName)
}

func (e *EnvConfigProvider) GetOrgID() string {
	return e.orgID
}

func (e *EnvConfigProvider) GetRequesterEmail() string {
	return e.requesterEmail
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}
