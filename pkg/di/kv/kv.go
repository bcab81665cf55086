package kv_di

import (
	"context"

	"github.com/lintang-b-s/go-area-edit/pkg/di/config"
	"github.com/lintang-b-s/go-area-edit/pkg/kvdb"

	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
)

func New(ctx context.Context, _ *config.Config) (*kvdb.KVDB, error) {
	viper.SetDefault("DB_PATH", "polygons.db")

	db, err := bolt.Open(viper.GetString("DB_PATH"), 0600, nil)
	if err != nil {
		return nil, err
	}

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	cleanup := func() {
		_ = db.Close()
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		cleanup()
	}()

	return bboltKV, nil
}
