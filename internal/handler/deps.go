package handler

import (
	"weatherworks/internal/app/login"
	"weatherworks/internal/app/session"
	"weatherworks/internal/configs"
)

type AppDeps struct {
	Config   *configs.AppConfig
	Sessions *session.Manager
	Backend  login.Authenticator
}
