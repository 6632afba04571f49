package http

import (
	"github.com/codeShowREX/major-project/internal/infrastructure/dynamo"
	jwtinfra "github.com/codeShowREX/major-project/internal/infrastructure/jwt"
	"github.com/codeShowREX/major-project/internal/infrastructure/mail"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    *dynamo.UserRepo
	Mailer      mail.Mailer
	JWTProvider *jwtinfra.Provider
}
