package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"ferroblog/config"
	infsec "ferroblog/internal/infrastructure/security"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire themselves from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	tokenService    *infsec.TokenService
	passwordService *infsec.BcryptPasswordService
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetPGPool(p *pgxpool.Pool) { pgPool = p }
func GetPGPool() *pgxpool.Pool  { return pgPool }

func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

func SetTokenService(s *infsec.TokenService) { tokenService = s }
func GetTokenService() *infsec.TokenService  { return tokenService }

func SetPasswordService(s *infsec.BcryptPasswordService) { passwordService = s }
func GetPasswordService() *infsec.BcryptPasswordService  { return passwordService }
