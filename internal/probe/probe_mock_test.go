package probe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/campus-login/internal/config"
	"github.com/MKhiriev/campus-login/internal/mock"
)

func TestWaitReachable_PassesAttemptTimeoutToPinger(t *testing.T) {
	ctrl := gomock.NewController(t)
	pinger := mock.NewMockPinger(ctrl)
	p, rec := newTestProbe(pinger, config.Probe{AttemptTimeout: 500 * time.Millisecond, RetryInterval: time.Second})

	gomock.InOrder(
		pinger.EXPECT().Ping(gomock.Any(), "1.1.1.5", 500*time.Millisecond).Return(errors.New("request timeout")),
		pinger.EXPECT().Ping(gomock.Any(), "1.1.1.5", 500*time.Millisecond).Return(nil),
	)

	assert.True(t, p.WaitReachable(context.Background(), "1.1.1.5", 10*time.Second))
	assert.Equal(t, []time.Duration{time.Second}, rec.slept)
}

func TestWaitReachable_NegativeTimeoutNeverPings(t *testing.T) {
	ctrl := gomock.NewController(t)
	// ожиданий нет: любой вызов Ping провалит тест
	p, rec := newTestProbe(mock.NewMockPinger(ctrl), config.Probe{})

	assert.False(t, p.WaitReachable(context.Background(), "1.1.1.5", -time.Second))
	assert.Empty(t, rec.slept)
}
