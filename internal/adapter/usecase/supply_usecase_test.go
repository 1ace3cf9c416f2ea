package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dreamtraffic/internal/catalog"
	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
	"dreamtraffic/internal/core/port/mocks"
	"dreamtraffic/internal/exchange"
	"dreamtraffic/internal/fees"
)

func newSupplyUseCase(t *testing.T) (*SupplyChainUseCase, *mocks.MockSupplyPathRepository) {
	repo := mocks.NewMockSupplyPathRepository(t)
	ssps := catalog.DefaultSSPs()
	cfg := exchange.DefaultConfig()
	cfg.Jitter = 0
	router := exchange.NewRouter(ssps, cfg, rand.NewSource(1))
	return NewSupplyChainUseCase(repo, fees.NewCalculator(0, 0), 0, router, ssps, discardLogger()), repo
}

var storedPaths = []domain.SupplyPath{
	{ID: 1, DSP: "amazon", Exchange: "bidswitch", SSP: "magnite", DSPFeePct: 12, ExchangeFeePct: 2, SSPFeePct: 15, MeasurementCPM: 0.02},
	{ID: 2, DSP: "amazon", Exchange: "", SSP: "freewheel", DSPFeePct: 12, SSPFeePct: 18, MeasurementCPM: 0.02},
	{ID: 3, DSP: "thetradedesk", Exchange: "bidswitch", SSP: "pubmatic", DSPFeePct: 15, ExchangeFeePct: 2, SSPFeePct: 14, MeasurementCPM: 0.03},
}

func TestCalculateAllPaths(t *testing.T) {
	svc, repo := newSupplyUseCase(t)
	repo.EXPECT().ListSupplyPaths(mock.Anything).Return(storedPaths, nil)

	got, err := svc.CalculateAllPaths(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "freewheel", got[0].SSP)
	assert.Equal(t, 70.0, got[0].PublisherNetPct)
	assert.Equal(t, "thetradedesk", got[2].DSP)
}

func TestCalculateAllPaths_RepoError(t *testing.T) {
	svc, repo := newSupplyUseCase(t)
	repo.EXPECT().ListSupplyPaths(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.CalculateAllPaths(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestCompareDSPs(t *testing.T) {
	svc, repo := newSupplyUseCase(t)
	repo.EXPECT().ListSupplyPaths(mock.Anything).Return(storedPaths, nil).Once()
	repo.EXPECT().ListSupplyPaths(mock.Anything).Return(nil, nil).Once()

	got, err := svc.CompareDSPs(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "amazon", got[0].DSP)
	assert.Equal(t, 2, got[0].PathCount)
	assert.Equal(t, 70.5, got[0].AvgPublisherNet)

	empty, err := svc.CompareDSPs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFormatPath(t *testing.T) {
	svc, repo := newSupplyUseCase(t)
	repo.EXPECT().GetSupplyPath(mock.Anything, int64(2)).Return(&storedPaths[1], nil)
	repo.EXPECT().GetSupplyPath(mock.Anything, int64(9)).Return(nil, nil)

	out, err := svc.FormatPath(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "direct"))
	assert.True(t, strings.Contains(out, "($7.00)"))

	_, err = svc.FormatPath(context.Background(), 9, 10)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestFormatPath_DefaultBaseCPM(t *testing.T) {
	repo := mocks.NewMockSupplyPathRepository(t)
	ssps := catalog.DefaultSSPs()
	router := exchange.NewRouter(ssps, exchange.DefaultConfig(), rand.NewSource(1))
	repo.EXPECT().GetSupplyPath(mock.Anything, int64(2)).Return(&storedPaths[1], nil)

	unset := NewSupplyChainUseCase(repo, fees.NewCalculator(0, 0), 0, router, ssps, discardLogger())
	out, err := unset.FormatPath(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "12.0%  ($1.20)")
	assert.Contains(t, out, "70.0%  ($7.00)")

	configured := NewSupplyChainUseCase(repo, fees.NewCalculator(0, 0), 20, router, ssps, discardLogger())
	out, err = configured.FormatPath(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "70.0%  ($14.00)")

	out, err = configured.FormatPath(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Contains(t, out, "70.0%  ($3.50)")
}

func TestCreateSupplyPath(t *testing.T) {
	svc, repo := newSupplyUseCase(t)
	ctx := context.Background()

	for name, p := range map[string]domain.SupplyPath{
		"missing dsp":     {SSP: "magnite"},
		"negative fee":    {DSP: "amazon", SSP: "magnite", SSPFeePct: -1},
		"win rate over 1": {DSP: "amazon", SSP: "magnite", EstimatedWinRate: 1.5},
	} {
		t.Run(name, func(t *testing.T) {
			err := svc.CreateSupplyPath(ctx, &p)
			assert.ErrorIs(t, err, port.ErrInvalidArgument)
		})
	}

	over := &domain.SupplyPath{DSP: "x", SSP: "y", DSPFeePct: 60, ExchangeFeePct: 30, SSPFeePct: 20}
	repo.EXPECT().CreateSupplyPath(mock.Anything, over).
		Run(func(_ context.Context, p *domain.SupplyPath) { p.ID = 12 }).
		Return(nil)
	require.NoError(t, svc.CreateSupplyPath(ctx, over))
	assert.Equal(t, int64(12), over.ID)
}

func TestRoute(t *testing.T) {
	svc, _ := newSupplyUseCase(t)
	ctx := context.Background()

	_, err := svc.Route(ctx, domain.RouteRequest{})
	assert.ErrorIs(t, err, port.ErrInvalidArgument)

	got, err := svc.Route(ctx, domain.RouteRequest{DSP: "amazon"})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "magnite", got[0].SSP)

	assert.Contains(t, svc.SupplyMap(ctx), "amazon")
	assert.Len(t, svc.ListSSPs(ctx), 4)
}
