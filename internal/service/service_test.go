package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamearena/internal/game"
	"github.com/GlebRadaev/gamearena/internal/repo"
	"github.com/GlebRadaev/gamearena/internal/service/banservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := New(repo.NewMemory(), banservice.NewMockNotifier(ctrl), Options{Rules: game.DefaultRules()})
	t.Cleanup(services.Engine.Shutdown)
	t.Cleanup(services.Settlement.Close)

	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.CompetitionService)
	assert.NotNil(t, services.AdmissionService)
	assert.NotNil(t, services.BanService)
	assert.NotNil(t, services.AdminService)
	assert.Equal(t, game.DefaultRules(), services.Engine.Rules())
	assert.NotNil(t, services.Settlement)
}
