package di

import (
	"context"

	editorHttp "github.com/lintang-b-s/go-area-edit/pkg/http"
	"github.com/lintang-b-s/go-area-edit/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/go-area-edit/pkg/http/usecases"
	"github.com/lintang-b-s/go-area-edit/pkg/kvdb"

	"go.uber.org/zap"
)

func NewEditorService(log *zap.Logger, kv *kvdb.KVDB) controllers.EditorService {
	return usecases.New(log, kv)
}

func NewEditorAPIServer(ctx context.Context, log *zap.Logger,
	editorService controllers.EditorService) (*editorHttp.Server, error) {
	api := editorHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, editorService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}
