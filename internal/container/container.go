package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/darshanbachhav0/Entrepreneur/config"
	"github.com/darshanbachhav0/Entrepreneur/internal/application"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	database    *mongo.Database
	redisClient *redis.Client
	uploader    application.Uploader
	sessions    *helpers.SessionManager
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetDatabase(db *mongo.Database)          { database = db }
func GetDatabase() *mongo.Database            { return database }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetUploader(u application.Uploader)      { uploader = u }
func GetUploader() application.Uploader       { return uploader }
func SetSessions(s *helpers.SessionManager)   { sessions = s }
func GetSessions() *helpers.SessionManager    { return sessions }
