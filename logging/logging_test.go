// SPDX-License-Identifier: MIT
package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/logging"
)

func TestNew(t *testing.T) {
	log, err := logging.New("debug", "console")
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zap.DebugLevel))

	log, err = logging.New("warn", "json")
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.InfoLevel))
	require.True(t, log.Core().Enabled(zap.ErrorLevel))

	_, err = logging.New("info", "xml")
	require.ErrorIs(t, err, logging.ErrUnknownFormat)

	_, err = logging.New("loud", "json")
	require.Error(t, err)
}
