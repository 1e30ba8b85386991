package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-efris-client/efris"
	"github.com/alapierre/go-efris-client/efris/api"
	"github.com/alapierre/go-efris-client/efris/cipher"
	"github.com/alapierre/go-efris-client/efris/config"
	"github.com/alapierre/go-efris-client/efris/dict"
	"github.com/alapierre/go-efris-client/efris/keys"
	"github.com/alapierre/go-efris-client/efris/util"
	"github.com/alapierre/go-efris-client/efris/validate"
)

func main() {

	logrus.SetLevel(logrus.DebugLevel)

	cfg, err := config.Load(util.GetEnvOrFailed("EFRIS_CONFIG"))
	if err != nil {
		panic(err)
	}

	private, err := keys.LoadPrivateKeyFromFile(cfg.Keys.PrivateKeyFile, []byte(cfg.Keys.PrivateKeyPassword))
	if err != nil {
		panic(err)
	}
	public, err := cipher.LoadPublicKeyFromFile(cfg.Keys.ServerPublicKeyFile)
	if err != nil {
		panic(err)
	}

	keyring := cipher.NewKeyring(private, public)
	service := api.NewService(
		api.New(cfg.Env),
		keyring,
		cfg.APIDevice(),
		validate.Options{Dict: dict.Default()},
	)

	ctx := efris.ContextWithEnv(context.Background(), cfg.Device.Tin, cfg.Env)

	serverTime, err := service.GetServerTime(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Println("server time:", serverTime)

	if err := service.GetSymmetricKey(ctx); err != nil {
		panic(err)
	}
	fmt.Println("session key installed, uploads will be encrypted")

	dictionaries, err := service.DictionaryUpdate(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Println("dictionary version:", dictionaries.DictionaryVersion)
}
