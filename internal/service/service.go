package service

import (
	"github.com/vaultmart/vaultmart/internal/handlers/auth"
	"github.com/vaultmart/vaultmart/internal/handlers/market"
	"github.com/vaultmart/vaultmart/internal/handlers/vault"

	pkgauth "github.com/vaultmart/vaultmart/pkg/auth"

	"github.com/vaultmart/vaultmart/internal/pg"
	"github.com/vaultmart/vaultmart/internal/repo"
	authservice "github.com/vaultmart/vaultmart/internal/service/authservice"
	marketservice "github.com/vaultmart/vaultmart/internal/service/marketservice"
	vaultservice "github.com/vaultmart/vaultmart/internal/service/vaultservice"
)

type Services struct {
	AuthService   auth.Service
	VaultService  vault.Service
	MarketService market.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	vaultService := vaultservice.New(repo.VaultRepo)
	marketService := marketservice.New(repo.WalletRepo, repo.MarketRepo, txManager)
	authService := authservice.New(repo.UserRepo, marketService, vaultService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		VaultService:  vaultService,
		MarketService: marketService,
	}
}
