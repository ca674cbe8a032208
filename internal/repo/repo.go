package repo

import (
	"github.com/vaultmart/vaultmart/internal/pg"
	"github.com/vaultmart/vaultmart/internal/recommender"
	marketrepo "github.com/vaultmart/vaultmart/internal/repo/market-repo"
	userrepo "github.com/vaultmart/vaultmart/internal/repo/user-repo"
	vaultrepo "github.com/vaultmart/vaultmart/internal/repo/vault-repo"
	walletrepo "github.com/vaultmart/vaultmart/internal/repo/wallet-repo"
	"github.com/vaultmart/vaultmart/internal/service/authservice"
	"github.com/vaultmart/vaultmart/internal/service/marketservice"
	"github.com/vaultmart/vaultmart/internal/service/vaultservice"
)

type Repositories struct {
	UserRepo    authservice.Repo
	VaultRepo   vaultservice.Repo
	WalletRepo  marketservice.WalletRepo
	MarketRepo  marketservice.MarketRepo
	ScoringRepo recommender.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	vaultRepo := vaultrepo.New(conn, txManager)
	walletRepo := walletrepo.New(conn)
	marketRepo := marketrepo.New(conn)

	return &Repositories{
		UserRepo:    userRepo,
		VaultRepo:   vaultRepo,
		WalletRepo:  walletRepo,
		MarketRepo:  marketRepo,
		ScoringRepo: marketRepo,
	}
}
