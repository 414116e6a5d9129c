package autostart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/campus-login/internal/logger"
	"github.com/MKhiriev/campus-login/internal/mock"
)

func TestSchtasks_IsEnabled_QueriesTaskByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	c := newSchtasksController("CustomTask", `C:\campus-login.exe`, runner, func() bool { return false }, logger.Nop())

	runner.EXPECT().
		Run(gomock.Any(), schtasksExe, "/Query", "/TN", "CustomTask").
		Return([]byte("CustomTask  Ready"), nil)
	assert.True(t, c.IsEnabled())

	runner.EXPECT().
		Run(gomock.Any(), schtasksExe, "/Query", "/TN", "CustomTask").
		Return([]byte("ERROR: The system cannot find the file specified."), errors.New("exit status 1"))
	assert.False(t, c.IsEnabled())
}
