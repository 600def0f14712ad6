package http

import (
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/content"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/infrastructure/dynamo"
	jwtinfra "github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/infrastructure/jwt"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	DecisionRepo *dynamo.DecisionRepo
	Documents    content.DocumentStore
	Events       sns.Publisher // nil disables content fan-out
	JWTProvider  *jwtinfra.Provider
}
