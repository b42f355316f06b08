package main

import (
	"context"
	"errors"
	"os"

	"orinoco/internal/address"
	"orinoco/internal/basket"
	"orinoco/internal/catalog"
	"orinoco/internal/checkout"
	"orinoco/internal/config"
	"orinoco/internal/db"
	"orinoco/internal/logger"
	"orinoco/internal/order"
	"orinoco/internal/payment"
	"orinoco/internal/prompt"
	"orinoco/internal/shell"
	"orinoco/internal/shopper"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	shopperRepo := shopper.NewRepository(database.DB)
	catalogRepo := catalog.NewRepository(database.DB)
	basketRepo := basket.NewRepository(database.DB)
	addressRepo := address.NewRepository(database.DB)
	paymentRepo := payment.NewRepository(database.DB)
	orderRepo := order.NewRepository(database.DB)

	prompter := prompt.New(os.Stdin, os.Stdout)

	basketSvc := basket.NewService(basketRepo, catalogRepo)
	addressSvc := address.NewService(addressRepo, prompter)
	paymentSvc := payment.NewService(paymentRepo, prompter)
	checkoutSvc := checkout.NewService(basketSvc, orderRepo, addressSvc, paymentSvc)

	session := shell.NewSession(prompter, os.Stdout, shopperRepo, catalogRepo, basketSvc, orderRepo, checkoutSvc)

	ctx := logger.NewSession(context.Background())
	logger.FromCtx(ctx).Info("session starting", zap.String("db_path", cfg.DBPath))

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, shopper.ErrNotFound) {
			os.Exit(1)
		}
		logger.FromCtx(ctx).Error("session ended with error", zap.Error(err))
		os.Exit(1)
	}

	logger.FromCtx(ctx).Info("session ended")
}
