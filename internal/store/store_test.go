package store

import (
	"testing"

	"github.com/h0rv/qrkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraState_InitialView(t *testing.T) {
	s := NewCameraState()

	assert.Equal(t, domain.PermissionUnknown, s.Permission())
	assert.Equal(t, ViewLoading, s.View())
	assert.False(t, s.PayloadShown())
}

func TestCameraState_PermissionViews(t *testing.T) {
	s := NewCameraState()

	s.SetPermission(true)
	assert.Equal(t, ViewLive, s.View())

	s.SetPermission(false)
	assert.Equal(t, ViewDenied, s.View())

	// Retrying from denied can grant
	s.SetPermission(true)
	assert.Equal(t, ViewLive, s.View())
}

func TestCameraState_DuplicateSuppression(t *testing.T) {
	s := NewCameraState()
	s.SetPermission(true)

	fired := 0
	for _, p := range []string{"A", "A", "B", "B", "A"} {
		if s.OnScanEvent(p) {
			fired++
		}
	}

	assert.Equal(t, 3, fired, "only value transitions should notify")
	assert.Equal(t, 3, s.PendingCount())
	assert.Equal(t, "A", s.Payload())
	assert.Equal(t, 3, s.Scans())
}

func TestCameraState_EmptyPayloadIgnored(t *testing.T) {
	s := NewCameraState()

	assert.False(t, s.OnScanEvent(""))
	assert.Equal(t, 0, s.PendingCount())
	assert.Equal(t, "", s.Payload())
}

func TestCameraState_ScanNotification(t *testing.T) {
	s := NewCameraState()
	require.True(t, s.OnScanEvent("https://example.com"))

	n, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, domain.NotificationScan, n.Kind)
	assert.Equal(t, "QR Code Detected!", n.Title)
	assert.Equal(t, "Data: https://example.com", n.Body)
	assert.Equal(t, "https://example.com", n.Payload)
	require.Len(t, n.Actions, 2)
	assert.Equal(t, "Scan Again", n.Actions[0].Label)
	assert.Equal(t, "OK", n.Actions[1].Label)
}

func TestCameraState_AcknowledgeResetsPayload(t *testing.T) {
	for _, key := range []string{KeyScanAgain, KeyOK} {
		t.Run(key, func(t *testing.T) {
			s := NewCameraState()
			require.True(t, s.OnScanEvent("A"))

			_, err := s.Acknowledge(key)
			require.NoError(t, err)
			assert.Equal(t, "", s.Payload())
			assert.False(t, s.PayloadShown())

			// Same value is detected again after acknowledgement
			assert.True(t, s.OnScanEvent("A"))
		})
	}
}

func TestCameraState_StalePayloadWhileNotificationShown(t *testing.T) {
	s := NewCameraState()
	require.True(t, s.OnScanEvent("A"))

	// Scanner keeps running while the notification is shown
	assert.False(t, s.OnScanEvent("A"))
	assert.True(t, s.OnScanEvent("B"))
	assert.Equal(t, 2, s.PendingCount())

	// Dismissing A's notification clears the recorded B as well
	n, err := s.Acknowledge(KeyOK)
	require.NoError(t, err)
	assert.Equal(t, "A", n.Payload)
	assert.Equal(t, "", s.Payload())

	head, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, "B", head.Payload)
}

func TestCameraState_AcknowledgeErrors(t *testing.T) {
	s := NewCameraState()

	_, err := s.Acknowledge(KeyOK)
	assert.ErrorIs(t, err, ErrNoNotification)

	require.True(t, s.OnScanEvent("A"))
	_, err = s.Acknowledge("x")
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, "A", s.Payload(), "unknown key must not reset the payload")
	assert.Equal(t, 1, s.PendingCount())
}

func TestCameraState_CaptureOutcomesExclusive(t *testing.T) {
	s := NewCameraState()

	s.CaptureSucceeded("pic-1")
	n, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, domain.NotificationCaptureSuccess, n.Kind)
	assert.Contains(t, n.Body, "Picture captured successfully!")
	assert.Equal(t, 1, s.Captures())

	_, err := s.Acknowledge(KeyOK)
	require.NoError(t, err)

	s.CaptureFailed()
	n, ok = s.Pending()
	require.True(t, ok)
	assert.Equal(t, domain.NotificationCaptureError, n.Kind)
	assert.Equal(t, "Failed to capture picture", n.Body)
	assert.Equal(t, 1, s.Captures())

	// Capture notices only offer OK
	_, err = s.Acknowledge(KeyScanAgain)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestCameraState_CaptureNoticeKeepsPayload(t *testing.T) {
	s := NewCameraState()
	s.CaptureSucceeded("pic-1")
	require.True(t, s.OnScanEvent("A"))

	_, err := s.Acknowledge(KeyOK)
	require.NoError(t, err)
	assert.Equal(t, "A", s.Payload(), "capture notice must not touch the payload")
}

func TestCameraState_Dismiss(t *testing.T) {
	s := NewCameraState()

	_, err := s.Dismiss()
	assert.ErrorIs(t, err, ErrNoNotification)

	require.True(t, s.OnScanEvent("A"))
	n, err := s.Dismiss()
	require.NoError(t, err)
	assert.Equal(t, "A", n.Payload)
	assert.Equal(t, "", s.Payload())
}

func TestGeneratorState_ShouldRender(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"\n\t ", false},
		{"hello", true},
		{"  hello  ", true},
	}

	for _, tt := range tests {
		s := NewGeneratorState()
		s.SetText(tt.text)
		assert.Equal(t, tt.want, s.ShouldRender(), "text %q", tt.text)
		assert.Equal(t, tt.text, s.Text(), "text must be stored verbatim")
	}
}

func TestGeneratorState_GenerateValidation(t *testing.T) {
	s := NewGeneratorState()
	s.SetText("   ")

	err := s.Generate()
	assert.ErrorIs(t, err, ErrEmptyInput)

	n, ok := s.Notice()
	require.True(t, ok)
	assert.Equal(t, domain.NotificationValidation, n.Kind)
	assert.Equal(t, "Please enter some text to generate QR code", n.Body)

	s.DismissNotice()
	_, ok = s.Notice()
	assert.False(t, ok)
}

func TestGeneratorState_GenerateWithText(t *testing.T) {
	s := NewGeneratorState()
	s.SetText("hello")

	require.NoError(t, s.Generate())
	_, ok := s.Notice()
	assert.False(t, ok)
}

func TestGeneratorState_ClearingRemovesImage(t *testing.T) {
	s := NewGeneratorState()
	s.SetText("hello")
	require.True(t, s.ShouldRender())

	s.SetText("")
	assert.False(t, s.ShouldRender())
}
