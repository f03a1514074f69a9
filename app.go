package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ztrade/launchweek/auth"
	"github.com/ztrade/launchweek/generate"
	"github.com/ztrade/launchweek/launch"
	"github.com/ztrade/launchweek/store"
)

// openService opens the configured store and wraps it in a launch service.
// The returned close func releases the database.
func openService(cfg *viper.Viper) (*launch.Service, func() error, error) {
	st, err := store.NewStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init launch store: %w", err)
	}
	svc := launch.NewService(st, st, launch.WithActor(auth.ActorName))
	return svc, st.Close, nil
}

// newGenerator builds the content generator. A missing or broken provider
// config leaves the generator without a provider; generation then reports
// that no provider is configured.
func newGenerator(ctx context.Context, cfg *viper.Viper) *generate.Generator {
	p, err := generate.NewProvider(ctx, generate.ConfigFromViper(cfg))
	if err != nil {
		log.Warnf("init LLM provider failed: %s (content generation disabled)", err.Error())
		return generate.NewGenerator(nil)
	}
	log.WithField("provider", p.Name()).Info("LLM provider initialized")
	return generate.NewGenerator(p)
}
