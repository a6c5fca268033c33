package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/mock"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/models"
)

func TestNewApp(t *testing.T) {
	_, err := NewApp(nil, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)

	app, err := NewApp(&config.ClientConfig{}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)

	var _ Client = app
}

func TestApp_QueuedPayload(t *testing.T) {
	tests := []struct {
		name string
		rec  models.LocalDraftRecord
		err  error
		want models.Payload
	}{
		{
			name: "queued draft",
			rec:  models.LocalDraftRecord{Payload: models.Payload(`{"title":"t"}`)},
			want: models.Payload(`{"title":"t"}`),
		},
		{name: "nothing queued", err: store.ErrLocalDraftNotFound},
		{name: "store unavailable", err: errors.New("disk is full")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			localStore := mock.NewMockLocalDraftStore(ctrl)
			localStore.EXPECT().Get(gomock.Any(), "d1").Return(tt.rec, tt.err)

			app := &App{logger: logger.Nop()}
			assert.Equal(t, tt.want, app.queuedPayload(context.Background(), localStore, "d1"))
		})
	}
}
