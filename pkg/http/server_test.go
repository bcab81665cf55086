package http

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/lintang-b-s/go-area-edit/pkg/datastructure"
	"github.com/lintang-b-s/go-area-edit/pkg/geo"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type noopEditorService struct{}

func (noopEditorService) CreatePolygon([]geo.GeoPoint) (datastructure.Polygon, error) {
	return datastructure.Polygon{}, nil
}

func (noopEditorService) UpdateVertices(int, []geo.GeoPoint) (datastructure.Polygon, error) {
	return datastructure.Polygon{}, nil
}

func (noopEditorService) GetPolygon(int) (datastructure.Polygon, error) {
	return datastructure.Polygon{}, nil
}

func (noopEditorService) ListPolygons() ([]datastructure.Polygon, error) { return nil, nil }
func (noopEditorService) DeletePolygon(int) error                        { return nil }
func (noopEditorService) LookupZone(lon, lat float64) geo.Zone           { return geo.Zone{} }

func (noopEditorService) PlanarArea([]geo.GeoPoint) (float64, geo.Zone, error) {
	return 0, geo.Zone{}, nil
}

func (noopEditorService) SnapToEdge(int, float64, float64) (geo.GeoPoint, int, error) {
	return geo.GeoPoint{}, 0, nil
}

func (noopEditorService) ExportWorkspace() ([]byte, error)    { return nil, nil }
func (noopEditorService) ImportWorkspace([]byte) (int, error) { return 0, nil }

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestServerWaitAfterGracefulShutdown(t *testing.T) {
	viper.Set("API_PORT", freePort(t))
	defer viper.Set("API_PORT", nil)

	ctx, cancel := context.WithCancel(context.Background())
	server := NewServer(zap.NewNop())
	_, err := server.Use(ctx, zap.NewNop(), noopEditorService{})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	cancel()

	assert.NoError(t, server.Wait())
}

func TestServerWaitSurfacesListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	viper.Set("API_PORT", l.Addr().(*net.TCPAddr).Port)
	defer viper.Set("API_PORT", nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := NewServer(zap.NewNop())
	_, err = server.Use(ctx, zap.NewNop(), noopEditorService{})
	require.NoError(t, err)

	assert.Error(t, server.Wait())
}
