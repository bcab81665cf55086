//go:build wireinject

//go:generate wire
package di

import (
	"github.com/lintang-b-s/go-area-edit/pkg/di/config"
	shortcontext "github.com/lintang-b-s/go-area-edit/pkg/di/context"
	kv_di "github.com/lintang-b-s/go-area-edit/pkg/di/kv"
	logger_di "github.com/lintang-b-s/go-area-edit/pkg/di/logger"
	editorHttp "github.com/lintang-b-s/go-area-edit/pkg/http"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
)

var editorSet = wire.NewSet(
	defaultSet,
	NewEditorService,
	NewEditorAPIServer,
)

func InitializeEditorService() (*editorHttp.Server, func(), error) {

	panic(wire.Build(editorSet))
}
